package tween

// Manager runs free tweens keyed by the property they animate.
// Starting a tween on a key that is already animating replaces the old one,
// so the newest tween always wins.
type Manager struct {
	defaults Vars
	active   map[string]*Tween
	keys     []string
}

// NewManager creates a manager whose tweens default to vars.
func NewManager(defaults Vars) *Manager {
	return &Manager{
		defaults: defaults,
		active:   make(map[string]*Tween),
	}
}

// To starts a tween from the current target values to to, replacing any
// tween running under key.
func (m *Manager) To(key string, targets []*float32, to []float32, vars Vars) *Tween {
	t := To(targets, to, vars.withDefaults(m.defaults))
	if _, ok := m.active[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.active[key] = t
	return t
}

// Get returns the tween running under key.
func (m *Manager) Get(key string) (*Tween, bool) {
	t, ok := m.active[key]
	return t, ok
}

// Len returns the number of running tweens.
func (m *Manager) Len() int {
	return len(m.active)
}

// Kill stops the tween under key, leaving its properties where they are.
func (m *Manager) Kill(key string) {
	if _, ok := m.active[key]; !ok {
		return
	}
	delete(m.active, key)
	m.removeKey(key)
}

// Update advances every tween and drops the finished ones.
func (m *Manager) Update(dt float32) {
	for _, key := range append([]string(nil), m.keys...) {
		if m.active[key].Update(dt) {
			m.Kill(key)
		}
	}
}

func (m *Manager) removeKey(key string) {
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}
