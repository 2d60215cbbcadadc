package stubc_test

import (
	"math"
	"unsafe"

	"github.com/KimMachineGun/stubc"
)

type Color int

const (
	Red Color = iota + 1
	Green
	Blue
)

type ScalarFunctions interface {
	BoolFunc() bool
	ByteFunc() byte
	RuneFunc() rune
	Int16Func() int16
	IntFunc() int
	Int64Func() int64
	Uint32Func() uint32
	UintptrFunc() uintptr
	Float32Func() float32
	Float64Func() float64
	Complex128Func() complex128
	EnumFunc() Color
	PIntFunc() *int
	PScalarFunctionsFunc() *ScalarFunctions
	UnsafePointerFunc() unsafe.Pointer
	MemberFunc() func(ScalarFunctions) bool
}

type Point struct {
	X, Y int
}

type Settings struct {
	Name    string
	Retries int
}

type DefaultConstructibleFunctions interface {
	StringFunc() string
	StructFunc() Point
	ArrayFunc() [2]int
	SettingsFunc() Settings
}

type NotDefaultConstructible struct {
	stubc.NoDefault
	a int
}

func NewNotDefaultConstructible(a int) NotDefaultConstructible {
	return NotDefaultConstructible{a: a}
}

func (n NotDefaultConstructible) Equal(other NotDefaultConstructible) bool {
	return n.a == other.a
}

type NonDefaultConstructibleFunctions interface {
	NotDefaultConstructibleFunc() NotDefaultConstructible
	WithError() (NotDefaultConstructible, error)
}

type ReferenceFunctions interface {
	SliceFunc() []int
	MapFunc() map[string]int
	ChanFunc() chan int
	ErrorFunc() error
	AbstractTypeFunc() ReferenceFunctions
}

// MyUnion stores either an int32 or a float64 in the same bits.
type MyUnion struct {
	stubc.Union
	bits uint64
}

func (u MyUnion) Int() int32 {
	return int32(u.bits)
}

func (u MyUnion) Float() float64 {
	return math.Float64frombits(u.bits)
}

type UnionFunctions interface {
	UnionFunc() MyUnion
	UnionPtrFunc() *MyUnion
}

type SomeInterface interface {
	Proc(a int)
	Func(a int) int
}

type Getter interface {
	Get(key string) ([]byte, error)
}

type Store interface {
	Getter
	Put(key string, val []byte) error
	Keys(prefix string, limit ...int) []string
}

type Counter interface {
	Inc() int
	Dec() int
}
