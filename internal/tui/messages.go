package tui

import (
	"github.com/autosys-vn/autosys-client/internal/notification"
	"github.com/autosys-vn/autosys-client/internal/toast"
)

// snapshotMsg is sent when the notification store publishes a new snapshot.
type snapshotMsg notification.Snapshot

// toastsMsg is sent when the set of visible toasts changes.
type toastsMsg []toast.Toast

// actionErrMsg carries a failed REST mutation; shown in the status line.
type actionErrMsg struct {
	err error
}
