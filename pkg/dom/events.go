package dom

// EventKind identifies one input event attribute an element can carry.
type EventKind uint8

const (
	EventClick EventKind = iota
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventMouseOver
	EventMouseOut
	EventScroll

	eventKindCount
)

var eventAttrNames = [eventKindCount]string{
	EventClick:     "onclick",
	EventMouseDown: "onmousedown",
	EventMouseUp:   "onmouseup",
	EventMouseMove: "onmousemove",
	EventMouseOver: "onmouseover",
	EventMouseOut:  "onmouseout",
	EventScroll:    "onscroll",
}

// AttrName returns the markup attribute name for the kind, e.g. "onclick".
func (k EventKind) AttrName() string {
	if k >= eventKindCount {
		return "unknown"
	}
	return eventAttrNames[k]
}

// EventKindByAttr resolves an event attribute name back to its kind.
func EventKindByAttr(name string) (EventKind, bool) {
	for k, n := range eventAttrNames {
		if n == name {
			return EventKind(k), true
		}
	}
	return 0, false
}

// PointerEvents lists the pointer event kinds in declaration order.
var PointerEvents = []EventKind{
	EventClick, EventMouseDown, EventMouseUp,
	EventMouseMove, EventMouseOver, EventMouseOut,
}

// AllEvents lists every event kind.
var AllEvents = append(append([]EventKind(nil), PointerEvents...), EventScroll)

// PointerEvent is the payload of pointer input delivered to a node.
type PointerEvent struct {
	X, Y       float64
	Button     int
	ClickCount int
	AltKey     bool
	ShiftKey   bool
	CtrlKey    bool
	SessionID  string
}

// ScrollEvent is the payload of scroll input delivered to a node.
type ScrollEvent struct {
	Delta     float64
	CtrlKey   bool
	ShiftKey  bool
	AltKey    bool
	SessionID string
}

// EventBinder is the routing boundary for hosts that deliver input
// out-of-process. Tokens have the form "{identifier}/{event-attribute}",
// e.g. "btn1/onclick".
type EventBinder interface {
	// BindPointer routes invocations of token to fire.
	BindPointer(token string, fire func(PointerEvent))
	// BindScroll routes invocations of token to fire.
	BindScroll(token string, fire func(ScrollEvent))
	// Unbind removes a routing entry. Unknown tokens are ignored.
	Unbind(token string)
}

// eventSlots stores per-kind handler lists plus an observed flag per
// kind. The flag outlives the handlers on deep copy: a copy never
// receives the source's callbacks, but keeps knowing which kinds had
// listeners so serialization still publishes them.
type eventSlots struct {
	pointer  [eventKindCount][]func(PointerEvent)
	scroll   []func(ScrollEvent)
	observed [eventKindCount]bool
}

func (e *Element) subscribePointer(kind EventKind, fn func(PointerEvent)) {
	e.events.pointer[kind] = append(e.events.pointer[kind], fn)
	e.events.observed[kind] = true
}

// OnClick subscribes to click events on this node.
func (e *Element) OnClick(fn func(PointerEvent)) { e.subscribePointer(EventClick, fn) }

// OnMouseDown subscribes to mouse-down events on this node.
func (e *Element) OnMouseDown(fn func(PointerEvent)) { e.subscribePointer(EventMouseDown, fn) }

// OnMouseUp subscribes to mouse-up events on this node.
func (e *Element) OnMouseUp(fn func(PointerEvent)) { e.subscribePointer(EventMouseUp, fn) }

// OnMouseMove subscribes to mouse-move events on this node.
func (e *Element) OnMouseMove(fn func(PointerEvent)) { e.subscribePointer(EventMouseMove, fn) }

// OnMouseOver subscribes to mouse-over events on this node.
func (e *Element) OnMouseOver(fn func(PointerEvent)) { e.subscribePointer(EventMouseOver, fn) }

// OnMouseOut subscribes to mouse-out events on this node.
func (e *Element) OnMouseOut(fn func(PointerEvent)) { e.subscribePointer(EventMouseOut, fn) }

// OnScroll subscribes to scroll events on this node.
func (e *Element) OnScroll(fn func(ScrollEvent)) {
	e.events.scroll = append(e.events.scroll, fn)
	e.events.observed[EventScroll] = true
}

// Observed reports whether the kind has ever had a listener. Deep copies
// keep this flag without the listeners themselves.
func (e *Element) Observed(kind EventKind) bool {
	if kind >= eventKindCount {
		return false
	}
	return e.events.observed[kind]
}

// RaisePointer delivers a pointer event of the given kind to this node's
// subscribers. Events do not bubble; delivery semantics beyond invoking
// the node's own handlers belong to the host.
func (e *Element) RaisePointer(kind EventKind, ev PointerEvent) {
	if kind >= eventKindCount || kind == EventScroll {
		return
	}
	for _, fn := range e.events.pointer[kind] {
		fn(ev)
	}
}

// RaiseClick delivers a click event to this node's subscribers.
func (e *Element) RaiseClick(ev PointerEvent) { e.RaisePointer(EventClick, ev) }

// RaiseScroll delivers a scroll event to this node's subscribers.
func (e *Element) RaiseScroll(ev ScrollEvent) {
	for _, fn := range e.events.scroll {
		fn(ev)
	}
}

// EventToken builds the routable binding token for one event kind of the
// identified node.
func EventToken(id string, kind EventKind) string {
	return id + "/" + kind.AttrName()
}

// RegisterEvents binds every event kind this node's type declares to the
// node's raise methods, addressed by "{identifier}/{event-attribute}".
// Nodes without an identifier cannot be routed to and register nothing.
func (e *Element) RegisterEvents(b EventBinder) {
	id := e.ID()
	if id == "" {
		return
	}
	for _, kind := range e.info.Events {
		token := EventToken(id, kind)
		if kind == EventScroll {
			b.BindScroll(token, e.RaiseScroll)
			continue
		}
		k := kind
		b.BindPointer(token, func(ev PointerEvent) { e.RaisePointer(k, ev) })
	}
}

// UnregisterEvents removes the bindings installed by RegisterEvents.
func (e *Element) UnregisterEvents(b EventBinder) {
	id := e.ID()
	if id == "" {
		return
	}
	for _, kind := range e.info.Events {
		b.Unbind(EventToken(id, kind))
	}
}
