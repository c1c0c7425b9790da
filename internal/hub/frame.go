package hub

import (
	"encoding/json"
)

// Khung JSON trao đổi trên kênh realtime với hub của portal.
const (
	frameTypeInvocation = "invocation"
	frameTypeEvent      = "event"
	
	targetBindConnection     = "BindConnection"
	targetNotificationPushed = "NotificationPushed"
)

type frame struct {
	Type         string          `json:"type"`
	Target       string          `json:"target"`
	ConnectionID string          `json:"connectionId,omitempty"`
	RecipientID  string          `json:"recipientId,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
}
