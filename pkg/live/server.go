package live

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/protocol"
)

// Server shares one document with any number of WebSocket viewers. A
// single event loop goroutine owns the document: viewer events, host
// mutations submitted through Do, and snapshot requests all run there,
// so handlers and node callbacks never need their own locking. After
// each unit of work the loop drains the accumulated patches and
// broadcasts them as one sequenced frame.
type Server struct {
	doc     *dom.Document
	cfg     Config
	binder  *Binder
	mirror  *mirror
	manager *Manager
	metrics *metrics
	tracer  trace.Tracer

	tasks chan task
	done  chan struct{}
	seq   uint64 // touched only by the event loop

	// bound remembers the id each node's tokens were minted under.
	// Renaming a node changes its tokens, so the old ones must be
	// unbound by the id they carried, not the id the node has now.
	// Touched only by the event loop.
	bound map[dom.Node]string
}

// task is one unit of work for the event loop.
type task struct {
	ev      *protocol.Event
	session *Session
	fn      func(*dom.Document)
	resync  *Session
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// ErrServerClosed is returned by Do after Close.
var ErrServerClosed = errors.New("live: server closed")

// NewServer wires a document to a running event loop. The document must
// not be mutated off the loop afterwards; use Do.
func NewServer(doc *dom.Document, cfg Config) *Server {
	cfg = cfg.withDefaults()
	s := &Server{
		doc:     doc,
		cfg:     cfg,
		binder:  NewBinder(),
		mirror:  newMirror(doc),
		manager: NewManager(cfg.MaxSessions),
		metrics: newMetrics(cfg.Registry),
		tracer:  otel.Tracer("vexel/live"),
		tasks:   make(chan task, cfg.EventBuffer),
		done:    make(chan struct{}),
		bound:   make(map[dom.Node]string),
	}

	dom.Walk(doc, func(n dom.Node) bool {
		s.bindNode(n)
		return true
	})
	doc.OnChildAdded(func(c dom.ChildAdded) {
		dom.Walk(c.Child, func(n dom.Node) bool {
			s.bindNode(n)
			return true
		})
	})
	doc.OnChildRemoved(func(c dom.ChildRemoved) {
		dom.Walk(c.Child, func(n dom.Node) bool {
			s.unbindNode(n)
			return true
		})
	})
	doc.OnAttrChanged(func(a dom.AttrChange) {
		if a.Name == "id" {
			s.rebindNode(a.Node)
		}
	})

	go s.run()
	return s
}

// bindNode routes the node's declared events and remembers the id its
// tokens were minted under.
func (s *Server) bindNode(n dom.Node) {
	n.Base().RegisterEvents(s.binder)
	if id := n.Base().ID(); id != "" {
		s.bound[n] = id
	}
}

// unbindNode removes the node's routing entries by the id recorded at
// bind time, which may differ from the node's current id.
func (s *Server) unbindNode(n dom.Node) {
	old, ok := s.bound[n]
	if !ok {
		return
	}
	for _, kind := range n.Base().Type().Events {
		s.binder.Unbind(dom.EventToken(old, kind))
	}
	delete(s.bound, n)
}

// rebindNode refreshes routing after the node's id changed: tokens carry
// the id, so the old entries go away and the new id gets fresh ones.
func (s *Server) rebindNode(n dom.Node) {
	s.unbindNode(n)
	s.bindNode(n)
}

// Do runs fn on the event loop with exclusive access to the document.
// It blocks until fn has run and its patches are broadcast.
func (s *Server) Do(fn func(*dom.Document)) error {
	ran := make(chan struct{})
	t := task{fn: func(d *dom.Document) {
		fn(d)
		close(ran)
	}}
	select {
	case s.tasks <- t:
	case <-s.done:
		return ErrServerClosed
	}
	select {
	case <-ran:
		return nil
	case <-s.done:
		return ErrServerClosed
	}
}

// Close stops the event loop and disconnects every session.
func (s *Server) Close() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.done)
	s.manager.CloseAll()
}

func (s *Server) run() {
	for {
		select {
		case t := <-s.tasks:
			switch {
			case t.ev != nil:
				s.dispatch(t.session, t.ev)
			case t.fn != nil:
				t.fn(s.doc)
			case t.resync != nil:
				s.sendSnapshot(t.resync, protocol.HandshakeOK)
			}
			s.flush()
		case <-s.done:
			return
		}
	}
}

func (s *Server) dispatch(sess *Session, ev *protocol.Event) {
	_, span := s.tracer.Start(context.Background(), "live.dispatch", trace.WithAttributes(
		attribute.String("event.kind", ev.Kind.String()),
		attribute.String("event.token", ev.Token),
		attribute.String("session.id", sess.ID()),
	))
	defer span.End()

	start := time.Now()
	err := s.binder.Dispatch(ev, sess.ID())
	s.metrics.eventDuration.WithLabelValues(ev.Kind.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		s.metrics.eventsTotal.WithLabelValues(ev.Kind.String(), "error").Inc()
		s.cfg.Logger.Warn("event dispatch failed",
			"session", sess.ID(), "token", ev.Token, "error", err)
		if errors.Is(err, ErrUnknownToken) {
			sess.sendError(protocol.ErrUnknownToken, ev.Token, false)
		}
		return
	}
	s.metrics.eventsTotal.WithLabelValues(ev.Kind.String(), "ok").Inc()
}

// flush broadcasts the patches the last unit of work produced.
func (s *Server) flush() {
	patches := s.mirror.Take()
	if len(patches) == 0 {
		return
	}
	s.seq++
	pf := &protocol.PatchFrame{Seq: s.seq, Patches: patches}
	payload := protocol.EncodePatches(pf)
	if len(payload) > protocol.MaxPayloadSize {
		// A batch the length field cannot describe; resynchronize
		// viewers with a snapshot instead.
		s.manager.Each(func(sess *Session) { s.sendSnapshot(sess, protocol.HandshakeOK) })
		return
	}
	f := protocol.NewFrame(protocol.FramePatches, payload)
	f.Flags |= protocol.FlagSequenced
	encoded, err := f.Encode()
	if err != nil {
		s.cfg.Logger.Error("patch frame encode failed", "seq", s.seq, "error", err)
		return
	}

	s.metrics.patchesSent.Add(float64(len(patches)))
	s.metrics.patchBytes.Add(float64(len(encoded)))
	s.manager.Each(func(sess *Session) { sess.Send(encoded) })
}

func (s *Server) sendSnapshot(sess *Session, status protocol.HandshakeStatus) {
	hello := &protocol.ServerHello{
		Status:    status,
		SessionID: sess.ID(),
		Seq:       s.seq,
		Markup:    dom.MarkupString(s.doc),
	}
	encoded, err := protocol.NewFrame(protocol.FrameHandshake, protocol.EncodeServerHello(hello)).Encode()
	if err != nil {
		// The document no longer fits in one frame. A truncated
		// snapshot would leave the viewer decoding garbage, so tell
		// it the session is unrecoverable instead.
		s.cfg.Logger.Error("snapshot exceeds frame limit",
			"session", sess.ID(), "bytes", len(hello.Markup), "error", err)
		s.metrics.wsErrors.WithLabelValues("snapshot").Inc()
		sess.sendError(protocol.ErrServerError, "document too large for snapshot", true)
		return
	}
	sess.Send(encoded)
}

func (s *Server) enqueueEvent(sess *Session, ev *protocol.Event) bool {
	select {
	case s.tasks <- task{ev: ev, session: sess}:
		return true
	case <-s.done:
		return false
	default:
		s.metrics.eventsTotal.WithLabelValues(ev.Kind.String(), "dropped").Inc()
		return false
	}
}

func (s *Server) requestResync(sess *Session) {
	select {
	case s.tasks <- task{resync: sess}:
	case <-s.done:
	default:
	}
}

func (s *Server) sessionClosed(sess *Session) {
	if sess.id != "" {
		s.manager.Remove(sess.id)
	}
	s.metrics.activeSessions.Set(float64(s.manager.Len()))
	s.cfg.Logger.Info("session closed", "session", sess.id, "active", s.manager.Len())
}

// Handler returns the HTTP surface: the serialized document at /, the
// WebSocket endpoint at /live, health and metrics.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleDocument)
	r.Get("/live", s.handleLive)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.metricsHandler())
	return r
}

func (s *Server) metricsHandler() http.Handler {
	if g, ok := s.cfg.Registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// handleDocument serves the current document markup. Serialization runs
// on the event loop so it never races a mutation.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	var markup string
	if err := s.Do(func(d *dom.Document) { markup = dom.MarkupString(d) }); err != nil {
		http.Error(w, "server closed", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(markup))
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.cfg.Logger.Error("websocket upgrade", "error", err)
		s.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		return
	}

	sess := newSession(conn, s)
	if !s.handshake(sess) {
		conn.Close()
		return
	}

	s.metrics.sessionsTotal.Inc()
	s.metrics.activeSessions.Set(float64(s.manager.Len()))
	s.cfg.Logger.Info("session opened", "session", sess.ID(), "active", s.manager.Len())

	go sess.writeLoop()
	sess.readLoop()
}

// handshake reads the client hello, vets version and capacity, admits
// the session and answers with a snapshot. Rejections are written
// directly since the session has no write loop yet.
func (s *Server) handshake(sess *Session) bool {
	sess.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	_, msg, err := sess.conn.ReadMessage()
	if err != nil {
		return false
	}
	frame, err := protocol.DecodeFrame(msg)
	if err != nil || frame.Type != protocol.FrameHandshake {
		s.reject(sess, protocol.HandshakeInvalidFormat)
		return false
	}
	hello, err := protocol.DecodeClientHello(frame.Payload)
	if err != nil {
		s.reject(sess, protocol.HandshakeInvalidFormat)
		return false
	}
	if !hello.Version.Compatible() {
		s.reject(sess, protocol.HandshakeVersionMismatch)
		return false
	}
	if !s.manager.Add(sess) {
		s.reject(sess, protocol.HandshakeServerBusy)
		return false
	}

	// Snapshot on the event loop so the markup and sequence are a
	// consistent pair.
	err = s.Do(func(*dom.Document) { s.sendSnapshot(sess, protocol.HandshakeOK) })
	if err != nil {
		s.manager.Remove(sess.ID())
		return false
	}
	return true
}

func (s *Server) reject(sess *Session, status protocol.HandshakeStatus) {
	hello := &protocol.ServerHello{Status: status}
	payload := protocol.EncodeServerHello(hello)
	encoded, err := protocol.NewFrame(protocol.FrameHandshake, payload).Encode()
	if err != nil {
		return
	}
	sess.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	sess.conn.WriteMessage(websocket.BinaryMessage, encoded)
}
