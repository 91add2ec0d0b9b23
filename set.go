package golidator

// Set is an ordered registry of validators grouped by level. Order is an
// observable contract: levels dispatch in the order they were first added,
// validators within a level in append order, and the Result preserves both.
type Set struct {
	order  []Level
	levels map[Level][]*Validator
}

// NewSet returns an empty registry.
func NewSet() *Set {
	return &Set{levels: make(map[Level][]*Validator)}
}

// Add registers validators under a level, appending when the level already
// exists. Nil validators are skipped. Returns the Set for chaining.
func (s *Set) Add(level Level, validators ...*Validator) *Set {
	if _, ok := s.levels[level]; !ok {
		s.order = append(s.order, level)
		s.levels[level] = nil
	}
	for _, v := range validators {
		if v != nil {
			s.levels[level] = append(s.levels[level], v)
		}
	}
	return s
}

// Levels returns the registered level keys in first-added order.
func (s *Set) Levels() []Level {
	out := make([]Level, len(s.order))
	copy(out, s.order)
	return out
}

// At returns the validators registered under a level, in append order.
func (s *Set) At(level Level) []*Validator {
	vs := s.levels[level]
	if len(vs) == 0 {
		return nil
	}
	out := make([]*Validator, len(vs))
	copy(out, vs)
	return out
}

// Len reports the total number of registered validators across all levels.
func (s *Set) Len() int {
	n := 0
	for _, vs := range s.levels {
		n += len(vs)
	}
	return n
}
