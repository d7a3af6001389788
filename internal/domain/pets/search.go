package pets

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pet-clinic-site/internal/platform/debounce"
	"pet-clinic-site/internal/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"
)

const DefaultSearchDebounce = 200 * time.Millisecond

// SearchInbound es lo que manda el cliente en cada tecla.
type SearchInbound struct {
	Type    string  `json:"type"` // "query", "ping"
	Species Species `json:"species"`
	Query   string  `json:"q"`
}

type SearchOutbound struct {
	Type    string  `json:"type"` // "session", "results", "pong", "error"
	Session string  `json:"session,omitempty"`
	Filter  *Filter `json:"query,omitempty"`
	Items   []Pet   `json:"items"`
	Total   int     `json:"total"`
	Text    string  `json:"text,omitempty"`
}

// SearchHandler atiende la búsqueda rápida por websocket. Las consultas
// que llegan dentro de la misma ventana se colapsan en una sola pasada.
type SearchHandler struct {
	svc   *Service
	delay time.Duration
	log   logger.Logger
}

func NewSearchHandler(svc *Service, delay time.Duration, log logger.Logger) *SearchHandler {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &SearchHandler{
		svc:   svc,
		delay: delay,
		log:   logger.OrNop(log).With(map[string]any{"component": "pets.search"}),
	}
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(r.Context(), conn)
	}).ServeHTTP(w, r)
}

func (h *SearchHandler) serveWS(ctx context.Context, conn *websocket.Conn) {
	sess := &searchSession{
		id:   uuid.NewString(),
		conn: conn,
		deb:  debounce.New(h.delay),
	}
	defer sess.deb.Stop()

	// La conexión hijackeada hereda Read/WriteTimeout del http.Server.
	_ = conn.SetDeadline(time.Time{})

	sess.send(SearchOutbound{Type: "session", Session: sess.id})
	h.log.Debug("search session opened", map[string]any{"session": sess.id})

	for {
		var msg SearchInbound
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.log.Debug("search session closed", map[string]any{"session": sess.id, "error": err.Error()})
			return
		}

		switch msg.Type {
		case "ping":
			sess.send(SearchOutbound{Type: "pong"})
		case "query":
			f := Filter{Species: msg.Species, Query: msg.Query}
			sess.deb.Trigger(func() { h.runQuery(ctx, sess, f) })
		default:
			sess.send(SearchOutbound{Type: "error", Text: "unknown message type"})
		}
	}
}

func (h *SearchHandler) runQuery(ctx context.Context, sess *searchSession, f Filter) {
	all, err := h.svc.List(ctx, Filter{})
	if err != nil {
		h.log.Error("search load failed", map[string]any{"session": sess.id, "error": err.Error()})
		sess.send(SearchOutbound{Type: "error", Text: "search failed"})
		return
	}

	items := f.Apply(all)
	sess.send(SearchOutbound{
		Type:   "results",
		Filter: &f,
		Items:  items,
		Total:  len(all),
	})
}

type searchSession struct {
	id   string
	conn *websocket.Conn
	deb  *debounce.Debouncer

	// El timer del debouncer y el loop de lectura escriben en la misma conexión.
	sendMu sync.Mutex
}

func (s *searchSession) send(msg SearchOutbound) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	_ = websocket.JSON.Send(s.conn, msg)
}
