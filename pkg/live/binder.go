package live

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/protocol"
)

// ErrUnknownToken reports an event addressed to a token no node is
// bound to, usually a viewer racing a node's removal.
var ErrUnknownToken = errors.New("live: unknown event token")

// Binder is the server-side implementation of dom.EventBinder: the
// routing table from "{id}/{event-attribute}" tokens to the bound
// node's raise methods. Nodes register through dom's RegisterEvents
// when they join the served document and unregister when they leave.
type Binder struct {
	mu      sync.RWMutex
	pointer map[string]func(dom.PointerEvent)
	scroll  map[string]func(dom.ScrollEvent)
}

// NewBinder returns an empty routing table.
func NewBinder() *Binder {
	return &Binder{
		pointer: make(map[string]func(dom.PointerEvent)),
		scroll:  make(map[string]func(dom.ScrollEvent)),
	}
}

// BindPointer routes invocations of token to fire.
func (b *Binder) BindPointer(token string, fire func(dom.PointerEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pointer[token] = fire
}

// BindScroll routes invocations of token to fire.
func (b *Binder) BindScroll(token string, fire func(dom.ScrollEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scroll[token] = fire
}

// Unbind removes a routing entry of either kind. Unknown tokens are
// ignored.
func (b *Binder) Unbind(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pointer, token)
	delete(b.scroll, token)
}

// Len returns the number of routed tokens.
func (b *Binder) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.pointer) + len(b.scroll)
}

// Dispatch resolves a wire event's token and fires the bound node's
// handlers. sessionID stamps the payload so handlers can tell viewers
// apart. Unroutable tokens fail; the caller reports them to the viewer
// without disturbing the document.
func (b *Binder) Dispatch(ev *protocol.Event, sessionID string) error {
	switch {
	case ev.Kind.IsPointer():
		b.mu.RLock()
		fire, ok := b.pointer[ev.Token]
		b.mu.RUnlock()
		if !ok {
			return fmt.Errorf("%w: no pointer binding for %q", ErrUnknownToken, ev.Token)
		}
		fire(pointerEvent(ev.Pointer, sessionID))
		return nil

	case ev.Kind == protocol.EventScroll:
		b.mu.RLock()
		fire, ok := b.scroll[ev.Token]
		b.mu.RUnlock()
		if !ok {
			return fmt.Errorf("%w: no scroll binding for %q", ErrUnknownToken, ev.Token)
		}
		fire(scrollEvent(ev.Scroll, sessionID))
		return nil

	default:
		return fmt.Errorf("live: undispatchable event kind %v", ev.Kind)
	}
}

func pointerEvent(p *protocol.PointerData, sessionID string) dom.PointerEvent {
	if p == nil {
		p = &protocol.PointerData{}
	}
	return dom.PointerEvent{
		X:          p.X,
		Y:          p.Y,
		Button:     int(p.Button),
		ClickCount: int(p.ClickCount),
		CtrlKey:    p.Modifiers.Has(protocol.ModCtrl),
		ShiftKey:   p.Modifiers.Has(protocol.ModShift),
		AltKey:     p.Modifiers.Has(protocol.ModAlt),
		SessionID:  sessionID,
	}
}

func scrollEvent(s *protocol.ScrollData, sessionID string) dom.ScrollEvent {
	if s == nil {
		s = &protocol.ScrollData{}
	}
	return dom.ScrollEvent{
		Delta:     s.Delta,
		CtrlKey:   s.Modifiers.Has(protocol.ModCtrl),
		ShiftKey:  s.Modifiers.Has(protocol.ModShift),
		AltKey:    s.Modifiers.Has(protocol.ModAlt),
		SessionID: sessionID,
	}
}
