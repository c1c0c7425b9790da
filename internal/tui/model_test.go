package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
	
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	
	"github.com/autosys-vn/autosys-client/internal/notification"
	"github.com/autosys-vn/autosys-client/internal/toast"
)

type fakeMarker struct {
	mu        sync.Mutex
	markedIDs []string
	markedAll int
}

func (f *fakeMarker) MarkOneSeen(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markedIDs = append(f.markedIDs, id)
	return nil
}

func (f *fakeMarker) MarkAllSeen(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markedAll++
	return nil
}

type staticFetcher struct {
	unseen []notification.Notification
	count  int
}

func (f *staticFetcher) ListUnseen(ctx context.Context) ([]notification.Notification, error) {
	return f.unseen, nil
}

func (f *staticFetcher) CountUnseen(ctx context.Context) (int, error) {
	return f.count, nil
}

func newTestModel(t *testing.T, fetcher *staticFetcher) (Model, *notification.Store, *fakeMarker) {
	t.Helper()
	
	store := notification.NewStore(fetcher, 6, time.Second)
	t.Cleanup(store.Close)
	require.NoError(t, store.Refresh(context.Background()))
	
	center := toast.NewCenter(time.Minute)
	t.Cleanup(center.Close)
	
	marker := &fakeMarker{}
	return NewModel(store, center, marker), store, marker
}

func TestBadgeShowsCappedCount(t *testing.T) {
	model, _, _ := newTestModel(t, &staticFetcher{
		unseen: []notification.Notification{{ID: "n-1", Title: "Fine issued"}},
		count:  150,
	})
	
	view := model.View()
	require.True(t, strings.Contains(view, "99+"), "badge should cap at 99+: %s", view)
	require.True(t, strings.Contains(view, "Fine issued"))
}

func TestEnterMarksSelectedSeen(t *testing.T) {
	model, store, marker := newTestModel(t, &staticFetcher{
		unseen: []notification.Notification{{ID: "n-1", Title: "Fine issued"}, {ID: "n-2", Title: "Inspection done"}},
		count:  4,
	})
	
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()
	
	// Mutation cục bộ ngay lập tức: 4 -> 3, item biến mất khỏi preview
	snapshot := store.Snapshot()
	require.Equal(t, 3, snapshot.Unread)
	require.Len(t, snapshot.Preview, 1)
	require.Equal(t, "n-2", snapshot.Preview[0].ID)
	
	marker.mu.Lock()
	require.Equal(t, []string{"n-1"}, marker.markedIDs)
	marker.mu.Unlock()
}

func TestMarkAllKey(t *testing.T) {
	model, store, marker := newTestModel(t, &staticFetcher{
		unseen: []notification.Notification{{ID: "n-1"}},
		count:  7,
	})
	
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.NotNil(t, cmd)
	cmd()
	
	snapshot := store.Snapshot()
	require.Equal(t, 0, snapshot.Unread)
	require.Empty(t, snapshot.Preview)
	
	marker.mu.Lock()
	require.Equal(t, 1, marker.markedAll)
	marker.mu.Unlock()
}

func TestSnapshotMsgUpdatesView(t *testing.T) {
	model, _, _ := newTestModel(t, &staticFetcher{count: 0})
	
	updated, _ := model.Update(snapshotMsg(notification.Snapshot{
		Preview: []notification.Notification{{ID: "n-9", Title: "New vehicle approved"}},
		Unread:  1,
	}))
	
	view := updated.View()
	require.True(t, strings.Contains(view, "New vehicle approved"))
}
