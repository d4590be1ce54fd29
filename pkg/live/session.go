package live

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vexel-dev/vexel/pkg/protocol"
)

// Session is one connected viewer: a WebSocket connection, its outbound
// frame queue and the read/write goroutine pair. Inbound events are
// handed to the server's event loop; the session itself never touches
// the document.
type Session struct {
	id     string
	conn   *websocket.Conn
	srv    *Server
	logger *slog.Logger

	send chan []byte
	done chan struct{}
	stop chan struct{}

	closeOnce sync.Once
	stopOnce  sync.Once
	ackSeq    atomic.Uint64
}

func newSession(conn *websocket.Conn, srv *Server) *Session {
	return &Session{
		conn:   conn,
		srv:    srv,
		send:   make(chan []byte, srv.cfg.SendBuffer),
		done:   make(chan struct{}),
		stop:   make(chan struct{}),
		logger: srv.cfg.Logger,
	}
}

// ID returns the session identifier assigned at admission.
func (s *Session) ID() string { return s.id }

// AckSeq returns the highest patch sequence the viewer acknowledged.
func (s *Session) AckSeq() uint64 { return s.ackSeq.Load() }

// Close tears the session down exactly once: the connection closes and
// both loops stop.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.Close()
		s.srv.sessionClosed(s)
	})
}

// shutdown asks the write loop to deliver the queued frames and then
// close the session. Unlike Close it does not cut the connection with
// frames still waiting, so a final error reaches the viewer.
func (s *Session) shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Send queues an encoded frame. A viewer whose queue is full is too far
// behind to follow the patch stream and is closed. The close runs on
// its own goroutine: Send is called while iterating the session table,
// and teardown re-enters it.
func (s *Session) Send(frame []byte) {
	select {
	case s.send <- frame:
	case <-s.done:
	default:
		s.logger.Warn("session send queue full, closing", "session", s.id)
		s.srv.metrics.wsErrors.WithLabelValues("backpressure").Inc()
		go s.Close()
	}
}

// readLoop reads frames until the connection drops. Events and acks go
// to the server; control frames are answered in place.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.srv.cfg.ReadTimeout))
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("websocket read", "session", s.id, "error", err)
				s.srv.metrics.wsErrors.WithLabelValues("read").Inc()
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Error("frame decode", "session", s.id, "error", err)
			s.sendError(protocol.ErrInvalidFrame, "malformed frame", false)
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEventFrame(frame.Payload)
		case protocol.FrameControl:
			s.handleControlFrame(frame.Payload)
		case protocol.FrameAck:
			s.handleAckFrame(frame.Payload)
		default:
			s.logger.Warn("unexpected frame type", "session", s.id, "type", frame.Type)
		}
	}
}

func (s *Session) handleEventFrame(payload []byte) {
	ev, err := protocol.DecodeEvent(payload)
	if err != nil {
		s.logger.Error("event decode", "session", s.id, "error", err)
		s.sendError(protocol.ErrInvalidEvent, "malformed event", false)
		return
	}
	if !s.srv.enqueueEvent(s, ev) {
		s.sendError(protocol.ErrRateLimited, "event queue full", false)
	}
}

func (s *Session) handleControlFrame(payload []byte) {
	ct, data, err := protocol.DecodeControl(payload)
	if err != nil {
		s.logger.Error("control decode", "session", s.id, "error", err)
		return
	}
	switch ct {
	case protocol.ControlPing:
		if pp, ok := data.(*protocol.PingPong); ok {
			ct, pong := protocol.NewPong(pp.Timestamp)
			if frame, err := protocol.NewFrame(protocol.FrameControl, protocol.EncodeControl(ct, pong)).Encode(); err == nil {
				s.Send(frame)
			}
		}
	case protocol.ControlPong:
		// Liveness confirmed; the read deadline reset covers it.
	case protocol.ControlResync:
		s.srv.requestResync(s)
	case protocol.ControlClose:
		s.Close()
	}
}

func (s *Session) handleAckFrame(payload []byte) {
	ack, err := protocol.DecodeAck(payload)
	if err != nil {
		s.logger.Error("ack decode", "session", s.id, "error", err)
		return
	}
	s.ackSeq.Store(ack.LastSeq)
}

func (s *Session) sendError(code protocol.ErrorCode, msg string, fatal bool) {
	em := &protocol.ErrorMessage{Code: code, Message: msg, Fatal: fatal}
	if frame, err := protocol.NewFrame(protocol.FrameError, protocol.EncodeErrorMessage(em)).Encode(); err == nil {
		s.Send(frame)
	}
	if fatal {
		s.shutdown()
	}
}

// writeLoop drains the send queue and keeps the heartbeat going. It
// owns all writes to the connection.
func (s *Session) writeLoop() {
	ticker := time.NewTicker(s.srv.cfg.HeartbeatInterval)
	defer ticker.Stop()
	defer s.Close()

	for {
		select {
		case frame := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.srv.cfg.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				s.logger.Error("websocket write", "session", s.id, "error", err)
				s.srv.metrics.wsErrors.WithLabelValues("write").Inc()
				return
			}

		case <-ticker.C:
			ct, ping := protocol.NewPing(uint64(time.Now().UnixMilli()))
			frame, err := protocol.NewFrame(protocol.FrameControl, protocol.EncodeControl(ct, ping)).Encode()
			if err != nil {
				return
			}
			s.conn.SetWriteDeadline(time.Now().Add(s.srv.cfg.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}

		case <-s.stop:
			for {
				select {
				case frame := <-s.send:
					s.conn.SetWriteDeadline(time.Now().Add(s.srv.cfg.WriteTimeout))
					if s.conn.WriteMessage(websocket.BinaryMessage, frame) != nil {
						return
					}
				default:
					return
				}
			}

		case <-s.done:
			return
		}
	}
}
