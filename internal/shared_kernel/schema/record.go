package schema

import "time"

// Record is a normalized field set. A key mapped to nil is a cleared
// optional field; a missing key was not supplied.
type Record map[string]any

func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

func (r Record) String(name string) (string, bool) {
	v, ok := r[name]
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

func (r Record) Float(name string) (*float64, bool) {
	v, ok := r[name]
	if !ok {
		return nil, false
	}
	f, isFloat := v.(float64)
	if !isFloat {
		return nil, true
	}
	return &f, true
}

func (r Record) Int(name string) (*int, bool) {
	v, ok := r[name]
	if !ok {
		return nil, false
	}
	i, isInt := v.(int)
	if !isInt {
		return nil, true
	}
	return &i, true
}

func (r Record) Date(name string) (*time.Time, bool) {
	v, ok := r[name]
	if !ok {
		return nil, false
	}
	t, isTime := v.(time.Time)
	if !isTime {
		return nil, true
	}
	return &t, true
}
