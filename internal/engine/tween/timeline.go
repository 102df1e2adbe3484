package tween

// Step is one entry of a Timeline.
type Step struct {
	Label string
	Start float32 // timeline position where the step begins
	End   float32

	// StartedAt and CompletedAt hold the timeline time at which the step was
	// first seen running and first seen finished, or -1.
	StartedAt   float32
	CompletedAt float32

	tween *Tween
}

// Started reports whether the step has begun.
func (s *Step) Started() bool { return s.StartedAt >= 0 }

// Completed reports whether the step has finished.
func (s *Step) Completed() bool { return s.CompletedAt >= 0 }

// Timeline plays steps back to back: each one starts when the previous ends.
type Timeline struct {
	defaults Vars
	steps    []*Step
	time     float32
	duration float32
}

// NewTimeline creates an empty timeline. Steps added without an explicit
// duration or ease take them from defaults.
func NewTimeline(defaults Vars) *Timeline {
	return &Timeline{defaults: defaults}
}

// FromTo appends a step that animates targets from from to to.
// The from values are applied immediately, before the step starts.
func (tl *Timeline) FromTo(label string, targets []*float32, from, to []float32, vars Vars) *Step {
	vars = vars.withDefaults(tl.defaults)
	s := &Step{
		Label:       label,
		Start:       tl.duration,
		End:         tl.duration + vars.Duration,
		StartedAt:   -1,
		CompletedAt: -1,
		tween:       FromTo(targets, from, to, vars),
	}
	tl.steps = append(tl.steps, s)
	tl.duration = s.End
	return s
}

// Steps returns the steps in play order.
func (tl *Timeline) Steps() []*Step {
	return tl.steps
}

// Duration returns the total length in seconds.
func (tl *Timeline) Duration() float32 {
	return tl.duration
}

// Done reports whether the playhead reached the end.
func (tl *Timeline) Done() bool {
	return tl.time >= tl.duration
}

// Update advances the playhead by dt seconds and returns true when finished.
func (tl *Timeline) Update(dt float32) bool {
	if dt < 0 {
		dt = 0
	}
	tl.time += dt
	if tl.time > tl.duration {
		tl.time = tl.duration
	}

	for _, s := range tl.steps {
		if tl.time < s.Start || s.Completed() {
			continue
		}
		if !s.Started() {
			s.StartedAt = tl.time
		}
		if s.tween.Seek(tl.time - s.Start) {
			s.CompletedAt = tl.time
		}
	}
	return tl.Done()
}
