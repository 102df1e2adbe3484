// Package tween animates float32 properties over time.
//
// Interpolation and easing come from gween; this package binds tweens to
// property pointers, groups them into sequential timelines and keeps at
// most one free-running tween per target key.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEase starts fast and lands softly.
var DefaultEase ease.TweenFunc = ease.OutQuad

// Vars configures a single tween.
type Vars struct {
	Duration float32 // seconds
	Ease     ease.TweenFunc
}

func (v Vars) withDefaults(d Vars) Vars {
	if v.Duration <= 0 {
		v.Duration = d.Duration
	}
	if v.Ease == nil {
		v.Ease = d.Ease
	}
	if v.Ease == nil {
		v.Ease = DefaultEase
	}
	return v
}

type channel struct {
	target *float32
	end    float32
	tw     *gween.Tween
}

// Tween drives one or more float32 properties from start to end values.
type Tween struct {
	channels []channel
	duration float32
	elapsed  float32
	done     bool
}

// FromTo creates a tween that moves each target from from[i] to to[i].
// The from values are written immediately.
func FromTo(targets []*float32, from, to []float32, vars Vars) *Tween {
	vars = vars.withDefaults(Vars{})
	t := &Tween{duration: vars.Duration}
	for i, p := range targets {
		if i >= len(from) || i >= len(to) {
			break
		}
		*p = from[i]
		t.channels = append(t.channels, channel{
			target: p,
			end:    to[i],
			tw:     gween.New(from[i], to[i], vars.Duration, vars.Ease),
		})
	}
	return t
}

// To creates a tween that moves each target from its current value to to[i].
func To(targets []*float32, to []float32, vars Vars) *Tween {
	from := make([]float32, len(targets))
	for i, p := range targets {
		from[i] = *p
	}
	return FromTo(targets, from, to, vars)
}

// Duration returns the tween length in seconds.
func (t *Tween) Duration() float32 {
	return t.duration
}

// Done reports whether the tween has reached its end values.
func (t *Tween) Done() bool {
	return t.done
}

// Update advances the tween by dt seconds and writes the new values.
// It returns true once the tween is finished.
func (t *Tween) Update(dt float32) bool {
	return t.Seek(t.elapsed + dt)
}

// Seek positions the tween at an absolute local time, clamped to [0, duration].
func (t *Tween) Seek(time float32) bool {
	if time < 0 {
		time = 0
	}
	if time > t.duration {
		time = t.duration
	}
	t.elapsed = time
	for _, c := range t.channels {
		if t.duration <= 0 {
			*c.target = c.end
			continue
		}
		v, _ := c.tw.Set(time)
		*c.target = v
	}
	t.done = time >= t.duration
	return t.done
}
