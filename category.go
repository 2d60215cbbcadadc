package stubc

import (
	"reflect"
)

// Category is the kind of default a result type receives.
type Category int

const (
	Invalid Category = iota
	Scalar
	Enumeration
	Pointer
	Operation
	Reference
	Value
	NoDefaultValue
	UnionValue
)

var categoryNames = [...]string{
	Invalid:        "invalid",
	Scalar:         "scalar",
	Enumeration:    "enumeration",
	Pointer:        "pointer",
	Operation:      "operation",
	Reference:      "reference",
	Value:          "value",
	NoDefaultValue: "no-default",
	UnionValue:     "union",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "invalid"
	}

	return categoryNames[c]
}

// NoDefault marks a type whose zero value is not a usable default. Embed it
// in a struct to make stubc refuse to synthesize that struct:
//
//	type Token struct {
//		stubc.NoDefault
//		raw string
//	}
type NoDefault struct{}

func (NoDefault) stubcNoDefault() {}

// Union marks a struct that models overlapping storage. Its default is the
// zero-initialized representation.
type Union struct{}

func (Union) stubcUnion() {}

var (
	noDefaultMarker = reflect.TypeOf((*interface{ stubcNoDefault() })(nil)).Elem()
	unionMarker     = reflect.TypeOf((*interface{ stubcUnion() })(nil)).Elem()
)

// classify applies the kind rules. Registered constructors are handled by
// the Synthesizer before it gets here.
func classify(t reflect.Type) Category {
	if t == nil {
		return Invalid
	}

	if t.Kind() == reflect.Struct {
		switch {
		case t.Implements(noDefaultMarker):
			return NoDefaultValue
		case t.Implements(unionMarker):
			return UnionValue
		}
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if isDefined(t) {
			return Enumeration
		}

		return Scalar
	case reflect.Bool, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Scalar
	case reflect.Ptr, reflect.UnsafePointer:
		return Pointer
	case reflect.Func:
		return Operation
	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return Reference
	case reflect.String, reflect.Struct, reflect.Array:
		return Value
	default:
		return Invalid
	}
}

// isDefined reports whether t is a defined type rather than a predeclared
// one. byte and rune are aliases and count as predeclared.
func isDefined(t reflect.Type) bool {
	return t.Name() != "" && t.PkgPath() != ""
}
