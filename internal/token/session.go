package token

import (
	"sync"
	"time"
)

// Session giữ token của phiên đăng nhập hiện tại trong bộ nhớ.
// Token chỉ sống trong vòng đời tiến trình, không ghi ra đĩa.
type Session struct {
	mu      sync.RWMutex
	token   string
	payload *Payload
}

func NewSession() *Session {
	return &Session{}
}

// SetToken stores a freshly issued token. A token that does not decode
// is rejected so the session never holds a string it cannot interpret.
func (s *Session) SetToken(tokenString string) error {
	payload, err := ParsePayload(tokenString)
	if err != nil {
		return err
	}
	
	s.mu.Lock()
	s.token = tokenString
	s.payload = payload
	s.mu.Unlock()
	
	return nil
}

// Clear drops the stored token, disabling every token-gated subsystem.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.payload = nil
	s.mu.Unlock()
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Payload() *Payload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payload
}

// ActiveAt reports whether a usable, unexpired token is present.
func (s *Session) ActiveAt(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payload != nil && s.payload.ValidAt(now)
}
