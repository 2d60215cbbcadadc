package stubc

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"sync"
)

// Slot identifies one method of one interface. Index is the method's index
// in the interface's reflect method set.
type Slot struct {
	Interface reflect.Type
	Index     int
}

func (s Slot) Method() reflect.Method {
	return s.Interface.Method(s.Index)
}

func (s Slot) Name() string {
	return s.Method().Name
}

func (s Slot) String() string {
	return s.Interface.String() + "." + s.Name()
}

type resolverKey struct {
	iface reflect.Type
	code  uintptr
}

// resolved is keyed by the code pointer of a method expression. Method
// expressions of the same method share one wrapper function, so the same
// reference always lands on the same entry.
var resolved = struct {
	sync.RWMutex
	m map[resolverKey]Slot
}{
	m: map[resolverKey]Slot{},
}

// probe aborts a call made on the probing proxy once the method name is
// known.
type probe struct {
	method string
}

type probeDispatcher struct{}

func (probeDispatcher) Dispatch(method string, _ ...interface{}) []interface{} {
	panic(probe{method: method})
}

// resolveSlot maps a method expression such as Cache.Get to its slot in
// info's interface.
func resolveSlot(info *proxyInfo, fn interface{}) (Slot, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return Slot{}, configErrorf("", "%T is not a method expression of %v", fn, info.iface)
	}

	ft := fv.Type()
	if ft.NumIn() == 0 || ft.In(0).Kind() != reflect.Interface || !info.iface.Implements(ft.In(0)) {
		return Slot{}, configErrorf("", "%v is not a method expression of %v", ft, info.iface)
	}

	key := resolverKey{iface: info.iface, code: fv.Pointer()}
	cacheable := !isClosure(key.code)

	if cacheable {
		resolved.RLock()
		slot, ok := resolved.m[key]
		resolved.RUnlock()
		if ok {
			return slot, nil
		}
	}

	name, err := probeMethod(info, fv)
	if err != nil {
		return Slot{}, err
	}

	slot, ok := info.slots[name]
	if !ok {
		return Slot{}, configErrorf("", "%v has no method %s", info.iface, name)
	}
	if !sameSignature(ft, slot.Method().Type) {
		return Slot{}, configErrorf(slot.String(), "signature %v does not match %v", ft, slot.Method().Type)
	}

	if cacheable {
		resolved.Lock()
		resolved.m[key] = slot
		resolved.Unlock()
	}

	return slot, nil
}

var closureName = regexp.MustCompile(`\.func\d+(\.\d+)*$`)

// isClosure reports whether code belongs to a function literal. Closures
// made from one literal share their code but may call different methods
// through captured variables, so they are probed on every resolution.
func isClosure(code uintptr) bool {
	f := runtime.FuncForPC(code)
	return f != nil && closureName.MatchString(f.Name())
}

func probeMethod(info *proxyInfo, fv reflect.Value) (name string, err error) {
	ft := fv.Type()

	args := make([]reflect.Value, ft.NumIn())
	args[0] = reflect.ValueOf(info.build(probeDispatcher{}))
	for i := 1; i < ft.NumIn(); i++ {
		args[i] = reflect.Zero(ft.In(i))
	}

	defer func() {
		r := recover()
		if r == nil {
			err = configErrorf("", "%v did not call a method of %v", ft, info.iface)
			return
		}

		p, ok := r.(probe)
		if !ok {
			panic(r)
		}

		name = p.method
	}()

	if ft.IsVariadic() {
		fv.CallSlice(args)
	} else {
		fv.Call(args)
	}

	return "", nil
}

// sameSignature compares a method expression type, receiver first, with the
// receiver-less method type of an interface.
func sameSignature(expr, method reflect.Type) bool {
	if expr.NumIn()-1 != method.NumIn() || expr.NumOut() != method.NumOut() {
		return false
	}
	if expr.IsVariadic() != method.IsVariadic() {
		return false
	}

	for i := 0; i < method.NumIn(); i++ {
		if expr.In(i+1) != method.In(i) {
			return false
		}
	}
	for i := 0; i < method.NumOut(); i++ {
		if expr.Out(i) != method.Out(i) {
			return false
		}
	}

	return true
}

func slotByName(info *proxyInfo, name string) (Slot, error) {
	slot, ok := info.slots[name]
	if !ok {
		return Slot{}, &ConfigurationError{
			Type:   info.iface,
			Reason: fmt.Sprintf("no method named %q", name),
		}
	}

	return slot, nil
}
