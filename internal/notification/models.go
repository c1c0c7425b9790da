package notification

import (
	"time"
)

// Kind phân loại thông báo; chỉ dùng để chọn icon/màu hiển thị.
const (
	KindFineIssued       = "FineIssued"
	KindInspectionResult = "InspectionResult"
	KindGeneral          = "General"
)

// Notification is created entirely server-side; the client only reads
// it and toggles seen-state. ID is stable across the REST and push
// delivery paths and is the sole de-duplication key.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipientId"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Kind        string    `json:"kind"`
	IsSeen      bool      `json:"isSeen"`
	CreatedBy   string    `json:"createdBy"`
	CreatedOn   time.Time `json:"createdOn"`
}
