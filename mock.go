package stubc

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Mock owns one proxy of interface T and the behaviors configured for it.
type Mock[T any] struct {
	proxy T
	d     *dispatcher
}

// Option configures a Mock.
type Option func(*options)

type options struct {
	synth    *Synthesizer
	defaults []func(*Synthesizer)
	logger   *slog.Logger
}

// WithSynthesizer replaces Defaults as the mock's source of default values.
func WithSynthesizer(s *Synthesizer) Option {
	return func(o *options) {
		o.synth = s
	}
}

// WithDefault registers the default of V for this mock only.
func WithDefault[V any](fn func() V) Option {
	return func(o *options) {
		o.defaults = append(o.defaults, func(s *Synthesizer) {
			RegisterDefault(s, fn)
		})
	}
}

// WithLogger traces every dispatch decision at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New returns a mock of interface T. It panics if no proxy was generated for
// T.
func New[T any](opts ...Option) *Mock[T] {
	t := reflect.TypeFor[T]()
	info, ok := lookupProxy(t)
	if !ok {
		panic(fmt.Sprintf("stubc: no proxy registered for %v; run the stubc command to generate one", t))
	}

	o := options{synth: Defaults}
	for _, opt := range opts {
		opt(&o)
	}

	synth := o.synth
	if len(o.defaults) > 0 {
		synth = synth.Child()
		for _, register := range o.defaults {
			register(synth)
		}
	}

	d := &dispatcher{
		info:   info,
		table:  newBehaviorTable(),
		synth:  synth,
		logger: o.logger,
	}

	return &Mock[T]{
		proxy: info.build(d).(T),
		d:     d,
	}
}

// Get returns the proxy to hand to code under test. It is the same value
// for the whole life of the mock.
func (m *Mock[T]) Get() T {
	return m.proxy
}

// Method selects the method referenced by a method expression of T, or of
// an interface embedded in T:
//
//	m.Method(Cache.Get)
//
// A function literal taking T is accepted too; it is called once on a
// probing proxy and must call exactly the method it stands for.
func (m *Mock[T]) Method(fn interface{}) *Method {
	slot, err := resolveSlot(m.d.info, fn)
	if err != nil {
		panic(err)
	}

	return &Method{slot: slot, d: m.d}
}

// MethodByName selects the method of T named name.
func (m *Mock[T]) MethodByName(name string) *Method {
	slot, err := slotByName(m.d.info, name)
	if err != nil {
		panic(err)
	}

	return &Method{slot: slot, d: m.d}
}

// Method is a selected method of a mock.
type Method struct {
	slot Slot
	d    *dispatcher
}

func (h *Method) Slot() Slot {
	return h.slot
}

func (h *Method) State() State {
	return h.d.table.stateOf(h.slot)
}

func (h *Method) String() string {
	return h.slot.String()
}

// Fake installs the default behavior of every given method: once nothing
// else is configured, calls return synthesized defaults.
func Fake(methods ...*Method) {
	for _, h := range methods {
		h.d.table.fake(h.slot)
	}
}

// When starts configuring the behaviors of a method.
func When(h *Method) *Stubbing {
	return &Stubbing{method: h}
}
