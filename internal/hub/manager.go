package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
	
	"github.com/gorilla/websocket"
	"github.com/lithammer/shortuuid/v4"
	"github.com/rs/zerolog/log"
	
	"github.com/autosys-vn/autosys-client/internal/notification"
	"github.com/autosys-vn/autosys-client/internal/token"
)

const (
	reconnectBaseDelay = 1 * time.Second
	reconnectMaxDelay  = 30 * time.Second
)

// Conn is the slice of a websocket connection the manager uses.
// *websocket.Conn satisfies it.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

// Manager giữ tối đa một kết nối realtime cho mỗi phiên đăng nhập.
// Sự vắng mặt của kết nối không phải là lỗi: REST vẫn là nguồn sự thật,
// kênh realtime chỉ đẩy gợi ý.
type Manager struct {
	hubURL  string
	session *token.Session
	dial    func(ctx context.Context) (Conn, error)
	
	mu       sync.Mutex
	handlers []func(notification.Notification)
	conn     Conn
	opened   bool
	closed   bool
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewManager(hubURL string, session *token.Session) *Manager {
	m := &Manager{
		hubURL:  hubURL,
		session: session,
	}
	m.dial = m.dialWebsocket
	return m
}

func (m *Manager) dialWebsocket(ctx context.Context) (Conn, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+m.session.Token())
	
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, m.hubURL, header)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// OnNotificationPushed registers a callback invoked once per pushed
// notification, in delivery order. All callbacks run on the single
// reader goroutine, so delivery is inherently serialized.
func (m *Manager) OnNotificationPushed(fn func(notification.Notification)) {
	m.mu.Lock()
	m.handlers = append(m.handlers, fn)
	m.mu.Unlock()
}

// Open establishes the realtime channel. It is a silent no-op when the
// session token is absent or expired (the subsystem stays disabled
// until the next sign-in) and when the channel is already open.
func (m *Manager) Open(ctx context.Context) {
	if !m.session.ActiveAt(time.Now()) {
		log.Debug().Msg("no active session, realtime channel stays closed")
		return
	}
	
	m.mu.Lock()
	if m.opened || m.closed {
		m.mu.Unlock()
		return
	}
	m.opened = true
	
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	m.mu.Unlock()
	
	go m.run(runCtx)
}

// run owns the connection lifecycle: dial, bind, read until failure,
// back off, redial. It exits when the manager closes, the context is
// cancelled, or the session token expires.
func (m *Manager) run(ctx context.Context) {
	defer close(m.done)
	
	delay := reconnectBaseDelay
	for {
		if ctx.Err() != nil || !m.session.ActiveAt(time.Now()) {
			return
		}
		
		conn, err := m.dial(ctx)
		if err != nil {
			log.Warn().Err(err).Dur("retry_in", delay).Msg("hub connection failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay *= 2
			if delay > reconnectMaxDelay {
				delay = reconnectMaxDelay
			}
			continue
		}
		
		delay = reconnectBaseDelay
		
		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			conn.Close()
			return
		}
		m.conn = conn
		m.mu.Unlock()
		
		// Gắn kết nối với danh tính hiện tại sau mỗi lần (re)connect.
		// Bind hỏng thì log rồi bỏ qua, kết nối vẫn giữ nguyên.
		m.bindConnection(conn)
		
		m.readLoop(conn)
		
		m.mu.Lock()
		m.conn = nil
		m.mu.Unlock()
		conn.Close()
	}
}

func (m *Manager) bindConnection(conn Conn) {
	payload := m.session.Payload()
	if payload == nil {
		return
	}
	
	bind := frame{
		Type:         frameTypeInvocation,
		Target:       targetBindConnection,
		ConnectionID: shortuuid.New(),
		RecipientID:  payload.RecipientID(),
	}
	if err := conn.WriteJSON(bind); err != nil {
		log.Warn().Err(err).Str("recipient_id", payload.RecipientID()).Msg("failed to bind hub connection")
		return
	}
	
	log.Info().Str("recipient_id", payload.RecipientID()).Msg("hub connection bound")
}

func (m *Manager) readLoop(conn Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			m.mu.Lock()
			closed := m.closed
			m.mu.Unlock()
			if !closed {
				log.Warn().Err(err).Msg("hub connection lost")
			}
			return
		}
		
		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			log.Debug().Err(err).Msg("ignoring unreadable hub frame")
			continue
		}
		
		if f.Type != frameTypeEvent || f.Target != targetNotificationPushed {
			log.Debug().Str("type", f.Type).Str("target", f.Target).Msg("ignoring unknown hub frame")
			continue
		}
		
		var n notification.Notification
		if err := json.Unmarshal(f.Payload, &n); err != nil {
			log.Debug().Err(err).Msg("ignoring malformed notification payload")
			continue
		}
		
		m.mu.Lock()
		handlers := make([]func(notification.Notification), len(m.handlers))
		copy(handlers, m.handlers)
		m.mu.Unlock()
		
		for _, fn := range handlers {
			fn(n)
		}
	}
}

// Close tears the channel down. Idempotent; after it returns no
// reconnect attempt or timer is left behind.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	opened := m.opened
	cancel := m.cancel
	conn := m.conn
	done := m.done
	m.mu.Unlock()
	
	if cancel != nil {
		cancel()
	}
	if conn != nil {
		conn.Close()
	}
	if opened && done != nil {
		<-done
	}
}
