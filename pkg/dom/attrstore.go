package dom

// attrStore holds a node's typed attribute values. Writes that change the
// effective value (by each value's own equality) invoke onChange once;
// kind checking and default suppression live above and around the store.
type attrStore struct {
	values   map[string]Value
	onChange func(name string, v Value)
}

func (s *attrStore) get(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// set stores v under name and reports whether the value changed.
func (s *attrStore) set(name string, v Value) bool {
	if old, ok := s.values[name]; ok && old.Equal(v) {
		return false
	}
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	s.values[name] = v
	if s.onChange != nil {
		s.onChange(name, v)
	}
	return true
}

// remove deletes the stored value and reports whether one was present.
// Removal notifies onChange with a nil value.
func (s *attrStore) remove(name string) bool {
	if _, ok := s.values[name]; !ok {
		return false
	}
	delete(s.values, name)
	if s.onChange != nil {
		s.onChange(name, nil)
	}
	return true
}

// setQuiet stores v without notification, for construction-time writes.
func (s *attrStore) setQuiet(name string, v Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	s.values[name] = v
}

// clone copies the store's values. Notification wiring is not copied;
// the new owner installs its own.
func (s *attrStore) clone() attrStore {
	if s.values == nil {
		return attrStore{}
	}
	values := make(map[string]Value, len(s.values))
	for name, v := range s.values {
		values[name] = v.Clone()
	}
	return attrStore{values: values}
}
