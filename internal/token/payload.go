package token

import (
	"errors"
	"fmt"
	"time"
	
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed session token")
	ErrMissingSubject = errors.New("session token has no subject claim")
)

// Payload chứa các claim mà client đọc được từ session token.
// Chữ ký của token do server kiểm tra; client chỉ giải mã claims.
type Payload struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ParsePayload decodes the claims of a bearer token without verifying
// its signature. Verification belongs to the server; the client only
// needs the expiry and the recipient identity.
func ParsePayload(tokenString string) (*Payload, error) {
	payload := &Payload{}
	parser := jwt.NewParser()
	
	_, _, err := parser.ParseUnverified(tokenString, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	
	if payload.Subject == "" {
		return nil, ErrMissingSubject
	}
	
	return payload, nil
}

// RecipientID trả về danh tính người nhận gắn với token.
func (payload *Payload) RecipientID() string {
	return payload.Subject
}

// ValidAt reports whether the token is still usable at the given time.
// A token without an expiry claim is treated as expired.
func (payload *Payload) ValidAt(now time.Time) bool {
	if payload.ExpiresAt == nil {
		return false
	}
	return now.Before(payload.ExpiresAt.Time)
}
