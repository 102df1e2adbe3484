package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-moon/internal/engine/overlay"
	"github.com/Faultbox/midgard-moon/internal/engine/tween"
)

// buildIntro creates the one-shot entrance: the moon grows from nothing,
// then the navigation bar slides down, then the title fades in.
// The from-values are applied right away so nothing flashes before its step.
func (s *State) buildIntro() *tween.Timeline {
	tl := tween.NewTimeline(tween.Vars{
		Duration: float32(s.cfg.Animation.StepDuration.Seconds()),
		Ease:     tween.DefaultEase,
	})

	tl.FromTo("moon.scale", s.Scene.Moon.ScaleTargets(),
		[]float32{0, 0, 0}, []float32{1, 1, 1}, tween.Vars{})

	tl.FromTo(overlay.SelectorNav,
		s.elementTargets(overlay.SelectorNav, func(e *overlay.Element) *float32 { return &e.YPercent }),
		[]float32{-100}, []float32{0}, tween.Vars{})

	tl.FromTo(overlay.SelectorTitle,
		s.elementTargets(overlay.SelectorTitle, func(e *overlay.Element) *float32 { return &e.Opacity }),
		[]float32{0}, []float32{1}, tween.Vars{})

	return tl
}

// elementTargets resolves an overlay property for tweening. A missing
// element yields no targets: its step still takes its time slot.
func (s *State) elementTargets(selector string, prop func(*overlay.Element) *float32) []*float32 {
	e, err := s.Overlay.Query(selector)
	if err != nil {
		s.log.Warn("intro target missing", zap.String("selector", selector), zap.Error(err))
		return nil
	}
	return []*float32{prop(e)}
}
