package stubc

import (
	"reflect"
)

type outcome int

const (
	outcomeReturn outcome = iota
	outcomeThrow
	outcomeDo
)

func (o outcome) String() string {
	switch o {
	case outcomeReturn:
		return "return"
	case outcomeThrow:
		return "throw"
	case outcomeDo:
		return "do"
	default:
		return "unknown"
	}
}

// behavior is one configured outcome of a slot. It is stored by value, so
// it outlives the expression that configured it.
type behavior struct {
	outcome outcome
	values  []reflect.Value
	payload interface{}
	fn      reflect.Value
	// ignoreArgs is set for Do functions declared without parameters.
	ignoreArgs bool
}

type slotState struct {
	queue  []behavior
	always *behavior
	faked  bool
}

// State names the configuration state of a slot.
type State int

const (
	Unconfigured State = iota
	Defaulted
	Queued
	Always
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Defaulted:
		return "defaulted"
	case Queued:
		return "queued"
	case Always:
		return "always"
	default:
		return "invalid"
	}
}

type behaviorTable struct {
	slots map[Slot]*slotState
}

func newBehaviorTable() *behaviorTable {
	return &behaviorTable{
		slots: map[Slot]*slotState{},
	}
}

func (t *behaviorTable) state(s Slot) *slotState {
	st, ok := t.slots[s]
	if !ok {
		st = &slotState{}
		t.slots[s] = st
	}

	return st
}

func (t *behaviorTable) fake(s Slot) {
	t.state(s).faked = true
}

func (t *behaviorTable) enqueue(s Slot, b behavior) {
	st := t.state(s)
	st.queue = append(st.queue, b)
}

func (t *behaviorTable) setAlways(s Slot, b behavior) {
	t.state(s).always = &b
}

// next returns the behavior for one call of s. A queued behavior is
// consumed; the always behavior is not. ok is false when neither exists,
// and faked then reports whether a default was installed.
func (t *behaviorTable) next(s Slot) (b behavior, ok bool, faked bool) {
	st, exists := t.slots[s]
	if !exists {
		return behavior{}, false, false
	}

	if len(st.queue) > 0 {
		b = st.queue[0]
		st.queue[0] = behavior{}
		st.queue = st.queue[1:]

		return b, true, st.faked
	}

	if st.always != nil {
		return *st.always, true, st.faked
	}

	return behavior{}, false, st.faked
}

func (t *behaviorTable) stateOf(s Slot) State {
	st, ok := t.slots[s]
	switch {
	case !ok:
		return Unconfigured
	case st.always != nil:
		return Always
	case len(st.queue) > 0:
		return Queued
	case st.faked:
		return Defaulted
	default:
		return Unconfigured
	}
}

// pending returns the number of one-shot behaviors left for s.
func (t *behaviorTable) pending(s Slot) int {
	st, ok := t.slots[s]
	if !ok {
		return 0
	}

	return len(st.queue)
}
