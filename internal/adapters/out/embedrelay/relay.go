// Package embedrelay runs the second-stage embed challenge through a browser
// agent connected over a WebSocket.
package embedrelay

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

//go:embed agent.html
var agentPage []byte

const (
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	frameQueueSize = 16
)

// Command ops sent to the agent and received from it.
const (
	opEmbed   = "embed"
	opPost    = "post"
	opRemove  = "remove"
	opMessage = "message"
	opError   = "error"
)

// envelope is the JSON wire format in both directions.
type envelope struct {
	Op     string `json:"op"`
	Frame  string `json:"frame,omitempty"`
	URL    string `json:"url,omitempty"`
	Origin string `json:"origin,omitempty"`
	Target string `json:"target,omitempty"`
	Data   string `json:"data,omitempty"`
}

var _ out.Embedder = (*Relay)(nil)

// Relay implements out.Embedder. Only the most recently connected agent is used.
type Relay struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	agent    *agent
	log      zerowrap.Logger
}

// New creates a relay with no agent connected.
func New(log zerowrap.Logger) *Relay {
	return &Relay{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		log: log,
	}
}

// Available reports whether an agent is connected.
func (r *Relay) Available() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.agent != nil
}

// Embed asks the agent to load url in a hidden frame.
func (r *Relay) Embed(ctx context.Context, url string) (out.Frame, error) {
	r.mu.Lock()
	a := r.agent
	r.mu.Unlock()

	if a == nil {
		return nil, domain.ErrEmbedUnavailable
	}

	f := a.register(uuid.NewString())
	if err := a.send(envelope{Op: opEmbed, Frame: f.id, URL: url}); err != nil {
		a.unregister(f.id)
		return nil, fmt.Errorf("%w: %v", domain.ErrRelayClosed, err)
	}

	log := zerowrap.FromCtx(ctx)
	log.Debug().
		Str(zerowrap.FieldAdapter, "embedrelay").
		Str("frame", f.id).
		Str("url", url).
		Msg("frame embedded")

	return f, nil
}

// AgentHandler upgrades the request and serves the agent connection until it closes.
func (r *Relay) AgentHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := r.upgrader.Upgrade(w, req, nil)
		if err != nil {
			r.log.Warn().Err(err).Str(zerowrap.FieldAdapter, "embedrelay").Msg("agent upgrade failed")
			return
		}

		a := newAgent(conn)
		r.mu.Lock()
		prev := r.agent
		r.agent = a
		r.mu.Unlock()
		if prev != nil {
			prev.close()
		}

		r.log.Info().
			Str(zerowrap.FieldAdapter, "embedrelay").
			Str(zerowrap.FieldClientIP, req.RemoteAddr).
			Msg("embed agent connected")

		go a.pingLoop()
		a.readLoop(r.log)

		r.mu.Lock()
		if r.agent == a {
			r.agent = nil
		}
		r.mu.Unlock()
		a.close()

		r.log.Info().Str(zerowrap.FieldAdapter, "embedrelay").Msg("embed agent disconnected")
	})
}

// PageHandler serves the agent page.
func (r *Relay) PageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(agentPage)
	})
}

// agent is one connected browser document.
type agent struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	mu      sync.Mutex
	frames  map[string]*frame
	done    chan struct{}
	once    sync.Once
}

func newAgent(conn *websocket.Conn) *agent {
	return &agent{
		conn:   conn,
		frames: make(map[string]*frame),
		done:   make(chan struct{}),
	}
}

func (a *agent) send(env envelope) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	select {
	case <-a.done:
		return domain.ErrRelayClosed
	default:
	}

	_ = a.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return a.conn.WriteJSON(env)
}

func (a *agent) register(id string) *frame {
	f := &frame{id: id, agent: a, msgs: make(chan domain.EmbedMessage, frameQueueSize)}
	a.mu.Lock()
	a.frames[id] = f
	a.mu.Unlock()
	return f
}

func (a *agent) unregister(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if f, ok := a.frames[id]; ok {
		delete(a.frames, id)
		close(f.msgs)
	}
}

// deliver routes a message to its frame, or to every frame when untagged.
func (a *agent) deliver(env envelope) {
	msg := domain.EmbedMessage{Origin: env.Origin, Data: env.Data}

	a.mu.Lock()
	defer a.mu.Unlock()

	if env.Frame != "" {
		if f, ok := a.frames[env.Frame]; ok {
			f.push(msg)
		}
		return
	}
	for _, f := range a.frames {
		f.push(msg)
	}
}

func (a *agent) readLoop(log zerowrap.Logger) {
	_ = a.conn.SetReadDeadline(time.Now().Add(pongWait))
	a.conn.SetPongHandler(func(string) error {
		return a.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env envelope
		if err := a.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str(zerowrap.FieldAdapter, "embedrelay").Msg("agent read failed")
			}
			return
		}

		switch env.Op {
		case opMessage:
			a.deliver(env)
		case opError:
			log.Debug().
				Str(zerowrap.FieldAdapter, "embedrelay").
				Str("frame", env.Frame).
				Str("error", env.Data).
				Msg("agent reported frame error")
			a.unregister(env.Frame)
		}
	}
}

func (a *agent) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
			a.writeMu.Lock()
			err := a.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			a.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// close drops every live frame and the connection. Safe to call twice.
func (a *agent) close() {
	a.once.Do(func() {
		close(a.done)
		a.mu.Lock()
		for id, f := range a.frames {
			delete(a.frames, id)
			close(f.msgs)
		}
		a.mu.Unlock()
		_ = a.conn.Close()
	})
}

// frame implements out.Frame.
type frame struct {
	id    string
	agent *agent
	msgs  chan domain.EmbedMessage
	once  sync.Once
}

// push never blocks the agent read loop; a full queue drops the message.
func (f *frame) push(msg domain.EmbedMessage) {
	select {
	case f.msgs <- msg:
	default:
	}
}

func (f *frame) Messages() <-chan domain.EmbedMessage {
	return f.msgs
}

func (f *frame) Post(_ context.Context, message, targetOrigin string) error {
	return f.agent.send(envelope{Op: opPost, Frame: f.id, Data: message, Target: targetOrigin})
}

func (f *frame) Remove() error {
	var err error
	f.once.Do(func() {
		f.agent.unregister(f.id)
		if sendErr := f.agent.send(envelope{Op: opRemove, Frame: f.id}); sendErr != nil && !errors.Is(sendErr, domain.ErrRelayClosed) {
			err = sendErr
		}
	})
	return err
}
