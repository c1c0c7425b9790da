package tui

import (
	"context"
	
	tea "github.com/charmbracelet/bubbletea"
	
	"github.com/autosys-vn/autosys-client/internal/notification"
	"github.com/autosys-vn/autosys-client/internal/toast"
)

// Marker is the slice of the REST client the bell UI needs.
type Marker interface {
	MarkOneSeen(ctx context.Context, id string) error
	MarkAllSeen(ctx context.Context) error
}

// Model is the bell/preview/toast view. All mutation happens on the
// bubbletea event loop; hub and store events arrive as messages pumped
// from the subscriptions, never from other goroutines.
type Model struct {
	store  *notification.Store
	center *toast.Center
	marker Marker
	
	snapCh   <-chan notification.Snapshot
	toastCh  <-chan []toast.Toast
	cancels  []func()
	
	snapshot notification.Snapshot
	toasts   []toast.Toast
	cursor   int
	lastErr  error
	width    int
	height   int
}

func NewModel(store *notification.Store, center *toast.Center, marker Marker) Model {
	snapCh, cancelSnap := store.Subscribe()
	toastCh, cancelToast := center.Subscribe()
	
	return Model{
		store:    store,
		center:   center,
		marker:   marker,
		snapCh:   snapCh,
		toastCh:  toastCh,
		cancels:  []func(){cancelSnap, cancelToast},
		snapshot: store.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.snapCh),
		waitForToasts(m.toastCh),
	)
}

func waitForSnapshot(ch <-chan notification.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(s)
	}
}

func waitForToasts(ch <-chan []toast.Toast) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return nil
		}
		return toastsMsg(t)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	
	case snapshotMsg:
		m.snapshot = notification.Snapshot(msg)
		if m.cursor >= len(m.snapshot.Preview) {
			m.cursor = len(m.snapshot.Preview) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, waitForSnapshot(m.snapCh)
	
	case toastsMsg:
		m.toasts = msg
		return m, waitForToasts(m.toastCh)
	
	case actionErrMsg:
		m.lastErr = msg.err
		return m, nil
	
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		for _, cancel := range m.cancels {
			cancel()
		}
		return m, tea.Quit
	
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	
	case "down", "j":
		if m.cursor < len(m.snapshot.Preview)-1 {
			m.cursor++
		}
		return m, nil
	
	case "r":
		return m, m.refreshCmd()
	
	case "a":
		// Mutation lạc quan trước, gọi REST sau
		m.store.MarkAllSeenLocally()
		return m, m.markAllSeenCmd()
	
	case "enter":
		if m.cursor >= len(m.snapshot.Preview) {
			return m, nil
		}
		id := m.snapshot.Preview[m.cursor].ID
		m.store.MarkOneSeenLocally(id)
		return m, m.markOneSeenCmd(id)
	
	case "d":
		if len(m.toasts) > 0 {
			m.center.Dismiss(m.toasts[0].ID)
		}
		return m, nil
	}
	
	return m, nil
}

func (m Model) refreshCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if err := store.Refresh(context.Background()); err != nil {
			return actionErrMsg{err: err}
		}
		return nil
	}
}

func (m Model) markOneSeenCmd(id string) tea.Cmd {
	marker := m.marker
	return func() tea.Msg {
		if err := marker.MarkOneSeen(context.Background(), id); err != nil {
			// Không rollback mutation lạc quan; refresh kế tiếp sẽ
			// đồng bộ lại với server
			return actionErrMsg{err: err}
		}
		return nil
	}
}

func (m Model) markAllSeenCmd() tea.Cmd {
	marker := m.marker
	return func() tea.Msg {
		if err := marker.MarkAllSeen(context.Background()); err != nil {
			return actionErrMsg{err: err}
		}
		return nil
	}
}
