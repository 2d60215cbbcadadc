package stubc

import (
	"fmt"
	"reflect"
)

// Stubbing configures the behaviors of one method. One-shot behaviors are
// consumed in the order they were added and return the Stubbing so they can
// be chained; the Always forms install the behavior used once no one-shot
// behavior is left.
type Stubbing struct {
	method *Method
}

// Return queues one call returning values, one per declared result.
func (s *Stubbing) Return(values ...interface{}) *Stubbing {
	s.method.d.table.enqueue(s.method.slot, s.returning(values))
	return s
}

// AlwaysReturn makes every remaining call return values.
func (s *Stubbing) AlwaysReturn(values ...interface{}) {
	s.method.d.table.setAlways(s.method.slot, s.returning(values))
}

// Throw queues one call raising payload. payload must not be nil.
func (s *Stubbing) Throw(payload interface{}) *Stubbing {
	s.method.d.table.enqueue(s.method.slot, s.throwing(payload))
	return s
}

// AlwaysThrow makes every remaining call raise payload.
func (s *Stubbing) AlwaysThrow(payload interface{}) {
	s.method.d.table.setAlways(s.method.slot, s.throwing(payload))
}

// Do queues one call running fn. fn has the method's signature, or no
// parameters and the method's results.
func (s *Stubbing) Do(fn interface{}) *Stubbing {
	s.method.d.table.enqueue(s.method.slot, s.doing(fn))
	return s
}

// AlwaysDo makes every remaining call run fn.
func (s *Stubbing) AlwaysDo(fn interface{}) {
	s.method.d.table.setAlways(s.method.slot, s.doing(fn))
}

func (s *Stubbing) returning(values []interface{}) behavior {
	slot := s.method.slot
	mt := slot.Method().Type

	if len(values) != mt.NumOut() {
		panic(configErrorf(slot.String(), "Return got %d values, want %d", len(values), mt.NumOut()))
	}

	out := make([]reflect.Value, len(values))
	for i, v := range values {
		rv, err := convertValue(mt.Out(i), v)
		if err != nil {
			panic(configErrorf(slot.String(), "Return value %d: %v", i, err))
		}

		out[i] = rv
	}

	return behavior{outcome: outcomeReturn, values: out}
}

func (s *Stubbing) throwing(payload interface{}) behavior {
	if payload == nil {
		panic(configErrorf(s.method.slot.String(), "Throw needs a non-nil payload"))
	}

	return behavior{outcome: outcomeThrow, payload: payload}
}

func (s *Stubbing) doing(fn interface{}) behavior {
	slot := s.method.slot
	mt := slot.Method().Type

	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		panic(configErrorf(slot.String(), "Do needs a function, got %T", fn))
	}

	ft := fv.Type()
	if !sameResults(ft, mt) {
		panic(configErrorf(slot.String(), "Do function %v must return the results of %v", ft, mt))
	}

	switch {
	case ft.NumIn() == 0 && mt.NumIn() != 0:
		return behavior{outcome: outcomeDo, fn: fv, ignoreArgs: true}
	case sameParams(ft, mt):
		return behavior{outcome: outcomeDo, fn: fv}
	default:
		panic(configErrorf(slot.String(), "Do function %v does not accept the arguments of %v", ft, mt))
	}
}

func sameResults(a, b reflect.Type) bool {
	if a.NumOut() != b.NumOut() {
		return false
	}
	for i := 0; i < a.NumOut(); i++ {
		if a.Out(i) != b.Out(i) {
			return false
		}
	}

	return true
}

func sameParams(a, b reflect.Type) bool {
	if a.NumIn() != b.NumIn() || a.IsVariadic() != b.IsVariadic() {
		return false
	}
	for i := 0; i < a.NumIn(); i++ {
		if a.In(i) != b.In(i) {
			return false
		}
	}

	return true
}

// convertValue stores v as a value of t. Untyped nil becomes the zero value
// of nilable types, and numeric values convert between numeric kinds so
// that Return(1) works for an int64 result, as long as the value survives
// the conversion unchanged.
func convertValue(t reflect.Type, v interface{}) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	if v == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
			reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return out, nil
		default:
			return reflect.Value{}, fmt.Errorf("cannot use nil as %v", t)
		}
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Type().AssignableTo(t):
		out.Set(rv)
	case isNumeric(rv.Kind()) && isNumeric(t.Kind()) && rv.Type().ConvertibleTo(t):
		cv := rv.Convert(t)
		if cv.Convert(rv.Type()).Interface() != rv.Interface() {
			return reflect.Value{}, fmt.Errorf("%v overflows or truncates %v", v, t)
		}
		out.Set(cv)
	default:
		return reflect.Value{}, fmt.Errorf("cannot use %T as %v", v, t)
	}

	return out, nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
