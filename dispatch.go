package stubc

import (
	"context"
	"log/slog"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// dispatcher resolves calls intercepted by one mock's proxy.
type dispatcher struct {
	info   *proxyInfo
	table  *behaviorTable
	synth  *Synthesizer
	logger *slog.Logger
}

func (d *dispatcher) Dispatch(method string, args ...interface{}) []interface{} {
	slot, ok := d.info.slots[method]
	if !ok {
		panic(configErrorf(d.info.iface.String()+"."+method, "proxy called a method outside of %v", d.info.iface))
	}

	results := d.invoke(slot, args)

	out := make([]interface{}, len(results))
	for i, r := range results {
		out[i] = r.Interface()
	}

	return out
}

func (d *dispatcher) invoke(slot Slot, args []interface{}) []reflect.Value {
	mt := slot.Method().Type

	b, ok, faked := d.table.next(slot)
	if !ok {
		if !faked {
			d.trace(slot, "unstubbed")
			panic(&UnstubbedCallError{Method: slot.String(), Args: args})
		}

		d.trace(slot, "default")

		results, err := d.synth.DefaultAll(resultTypes(mt))
		if err != nil {
			if cerr, ok := err.(*ConfigurationError); ok {
				cerr.Method = slot.String()
			}
			panic(err)
		}

		return results
	}

	d.trace(slot, b.outcome.String())

	switch b.outcome {
	case outcomeThrow:
		return raise(mt, b.payload)
	case outcomeDo:
		return d.call(slot, b, args)
	default:
		return b.values
	}
}

// raise delivers a thrown payload. An error thrown at a method whose last
// result is an error is returned there; anything else panics unchanged.
func raise(mt reflect.Type, payload interface{}) []reflect.Value {
	err, isErr := payload.(error)
	if !isErr || mt.NumOut() == 0 || mt.Out(mt.NumOut()-1) != errorType {
		panic(payload)
	}

	results := make([]reflect.Value, mt.NumOut())
	for i := range results[:len(results)-1] {
		results[i] = reflect.Zero(mt.Out(i))
	}

	last := reflect.New(errorType).Elem()
	last.Set(reflect.ValueOf(err))
	results[len(results)-1] = last

	return results
}

func (d *dispatcher) call(slot Slot, b behavior, args []interface{}) []reflect.Value {
	mt := slot.Method().Type
	if b.ignoreArgs {
		return b.fn.Call(nil)
	}

	in := make([]reflect.Value, mt.NumIn())
	for i := range in {
		in[i] = argValue(mt.In(i), args[i])
	}

	if mt.IsVariadic() {
		return b.fn.CallSlice(in)
	}

	return b.fn.Call(in)
}

// argValue restores the declared type of an argument that went through an
// interface{}, where a nil interface or pointer loses it.
func argValue(t reflect.Type, arg interface{}) reflect.Value {
	if arg == nil {
		return reflect.Zero(t)
	}

	v := reflect.ValueOf(arg)
	if v.Type() == t {
		return v
	}

	out := reflect.New(t).Elem()
	out.Set(v)

	return out
}

func (d *dispatcher) trace(slot Slot, decision string) {
	if d.logger == nil {
		return
	}

	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "stubc dispatch",
		slog.String("method", slot.String()),
		slog.String("outcome", decision),
		slog.Int("pending", d.table.pending(slot)),
	)
}

func resultTypes(mt reflect.Type) []reflect.Type {
	out := make([]reflect.Type, mt.NumOut())
	for i := range out {
		out[i] = mt.Out(i)
	}

	return out
}
