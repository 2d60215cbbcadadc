package stubc

import (
	"fmt"
	"reflect"
	"sync"
)

// Dispatcher is the interception point of generated proxies. Every proxy
// method calls Dispatch with its own name and its arguments, a variadic
// parameter being passed as one slice. The returned slice holds exactly one
// value per declared result.
type Dispatcher interface {
	Dispatch(method string, args ...interface{}) []interface{}
}

type proxyInfo struct {
	iface reflect.Type
	build func(Dispatcher) interface{}
	slots map[string]Slot
}

var proxies = struct {
	sync.RWMutex
	m map[reflect.Type]*proxyInfo
}{
	m: map[reflect.Type]*proxyInfo{},
}

// Register installs the proxy builder of interface T. It is called from the
// init function of code generated by the stubc command; a later registration
// for the same interface replaces the earlier one.
func Register[T any](build func(Dispatcher) T) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		panic(fmt.Sprintf("stubc: cannot register proxy of non-interface type %v", t))
	}

	info := &proxyInfo{
		iface: t,
		build: func(d Dispatcher) interface{} {
			return build(d)
		},
		slots: make(map[string]Slot, t.NumMethod()),
	}
	for i := 0; i < t.NumMethod(); i++ {
		info.slots[t.Method(i).Name] = Slot{Interface: t, Index: i}
	}

	proxies.Lock()
	proxies.m[t] = info
	proxies.Unlock()
}

// Registered reports whether a proxy was generated for interface T.
func Registered[T any]() bool {
	_, ok := lookupProxy(reflect.TypeFor[T]())
	return ok
}

func lookupProxy(t reflect.Type) (*proxyInfo, bool) {
	proxies.RLock()
	defer proxies.RUnlock()

	info, ok := proxies.m[t]
	return info, ok
}
