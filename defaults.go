package stubc

import (
	"reflect"
	"sync"
)

// Constructor builds the default value of one type. It must be
// deterministic: two results for the same type must compare equal.
type Constructor func() reflect.Value

// Synthesizer produces the default result of a defaulted method.
type Synthesizer struct {
	parent *Synthesizer

	mu           sync.RWMutex
	constructors map[reflect.Type]Constructor
}

// Defaults is the process-wide synthesizer every mock falls back to.
var Defaults = NewSynthesizer()

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		constructors: map[reflect.Type]Constructor{},
	}
}

// Child returns a synthesizer whose registrations shadow s without
// modifying it.
func (s *Synthesizer) Child() *Synthesizer {
	c := NewSynthesizer()
	c.parent = s

	return c
}

// Register installs the zero-argument constructor of t. A registered
// constructor makes t a Value, even if it embeds NoDefault.
func (s *Synthesizer) Register(t reflect.Type, fn Constructor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.constructors[t] = fn
}

// RegisterDefault is the typed form of Synthesizer.Register.
func RegisterDefault[T any](s *Synthesizer, fn func() T) {
	s.Register(reflect.TypeFor[T](), func() reflect.Value {
		v := fn()
		return reflect.ValueOf(&v).Elem()
	})
}

func (s *Synthesizer) constructor(t reflect.Type) (Constructor, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		fn, ok := cur.constructors[t]
		cur.mu.RUnlock()
		if ok {
			return fn, true
		}
	}

	return nil, false
}

// Classify returns the category that decides t's default. An array or a
// struct holding a value of a NoDefault type has no default either.
func (s *Synthesizer) Classify(t reflect.Type) Category {
	if _, ok := s.constructor(t); ok {
		return Value
	}

	c := classify(t)
	if c == Value && !s.composable(t) {
		return NoDefaultValue
	}

	return c
}

func (s *Synthesizer) composable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return s.Classify(t.Elem()) != NoDefaultValue
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if s.Classify(t.Field(i).Type) == NoDefaultValue {
				return false
			}
		}
	}

	return true
}

// Default synthesizes the default value of t. The error is a
// *ConfigurationError matching ErrNoDefault when t has none.
func (s *Synthesizer) Default(t reflect.Type) (reflect.Value, error) {
	switch s.Classify(t) {
	case Scalar, Enumeration, Pointer, Operation, Reference, UnionValue:
		return reflect.Zero(t), nil
	case Value:
		fn, ok := s.constructor(t)
		if !ok {
			return s.compose(t)
		}

		v := fn()
		if !v.IsValid() {
			return reflect.Zero(t), nil
		}
		if !v.Type().AssignableTo(t) {
			return reflect.Value{}, &ConfigurationError{
				Type:   t,
				Reason: "registered constructor returned " + v.Type().String(),
			}
		}

		out := reflect.New(t).Elem()
		out.Set(v)

		return out, nil
	default:
		return reflect.Value{}, noDefaultError("", t)
	}
}

// compose builds the default of a Value type without a constructor: the
// zero value, with array elements taken from their own defaults.
func (s *Synthesizer) compose(t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	if t.Kind() != reflect.Array || !s.constructed(t.Elem()) {
		return out, nil
	}

	for i := 0; i < t.Len(); i++ {
		v, err := s.Default(t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		out.Index(i).Set(v)
	}

	return out, nil
}

// constructed reports whether the default of t differs from its zero value
// through a registered constructor.
func (s *Synthesizer) constructed(t reflect.Type) bool {
	if _, ok := s.constructor(t); ok {
		return true
	}

	return t.Kind() == reflect.Array && s.constructed(t.Elem())
}

// DefaultAll synthesizes one value per type, in order.
func (s *Synthesizer) DefaultAll(types []reflect.Type) ([]reflect.Value, error) {
	out := make([]reflect.Value, len(types))
	for i, t := range types {
		v, err := s.Default(t)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}
