// Package overlay holds the 2D page drawn over the 3D scene: a navigation
// bar pinned to the top and a page title. Elements are looked up by a CSS-like
// selector so animations can target them by name.
package overlay

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-moon/internal/config"
)

// Selectors of the built-in elements.
const (
	SelectorNav   = "nav"
	SelectorTitle = ".title"
)

// ErrNotFound is returned when no element matches a selector.
var ErrNotFound = errors.New("overlay: no element matches selector")

// Element is one animatable box of the page.
type Element struct {
	Selector string
	Text     string

	// YPercent shifts the element vertically by a percentage of its own height.
	YPercent float32
	Opacity  float32

	Background mgl32.Vec4 // RGBA, alpha 0 = no box
	Foreground mgl32.Vec4
	TextScale  float32
}

// Overlay is the set of page elements.
type Overlay struct {
	cfg      config.PageConfig
	elements []*Element
}

// New creates the page with a navigation bar and a title.
func New(cfg config.PageConfig) *Overlay {
	o := &Overlay{cfg: cfg}
	o.elements = []*Element{
		{
			Selector:   SelectorNav,
			Text:       cfg.Brand,
			Opacity:    1,
			Background: mgl32.Vec4{0, 0, 0, 0.35},
			Foreground: mgl32.Vec4{1, 1, 1, 1},
			TextScale:  2,
		},
		{
			Selector:   SelectorTitle,
			Text:       cfg.Title,
			Opacity:    1,
			Foreground: mgl32.Vec4{1, 1, 1, 1},
			TextScale:  cfg.TitleScale,
		},
	}
	return o
}

// Query returns the first element matching selector.
func (o *Overlay) Query(selector string) (*Element, error) {
	for _, e := range o.elements {
		if e.Selector == selector {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, selector)
}
