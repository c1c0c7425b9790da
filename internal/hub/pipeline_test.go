package hub

import (
	"context"
	"sync"
	"testing"
	"time"
	
	"github.com/stretchr/testify/require"
	
	"github.com/autosys-vn/autosys-client/internal/notification"
	"github.com/autosys-vn/autosys-client/internal/toast"
)

type countedFetcher struct {
	mu     sync.Mutex
	unseen []notification.Notification
	count  int
}

func (f *countedFetcher) ListUnseen(ctx context.Context) ([]notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unseen, nil
}

func (f *countedFetcher) CountUnseen(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count, nil
}

func (f *countedFetcher) set(unseen []notification.Notification, count int) {
	f.mu.Lock()
	f.unseen = unseen
	f.count = count
	f.mu.Unlock()
}

// Kịch bản đầy đủ: counter 3, push X về -> toast hiện ngay,
// counter chỉ nhảy lên 4 sau khi settle refresh đọc lại từ REST.
func TestPushToToastAndSettledCounter(t *testing.T) {
	fetcher := &countedFetcher{count: 3}
	store := notification.NewStore(fetcher, 6, 20*time.Millisecond)
	defer store.Close()
	require.NoError(t, store.Refresh(context.Background()))
	require.Equal(t, 3, store.Snapshot().Unread)
	
	center := toast.NewCenter(time.Minute)
	defer center.Close()
	
	session := activeSession(t, "user-1")
	conn := newFakeConn()
	manager := NewManager("ws://hub.test/notifications", session)
	manager.dial = func(ctx context.Context) (Conn, error) {
		return conn, nil
	}
	manager.OnNotificationPushed(center.ShowNotification)
	manager.OnNotificationPushed(store.HandlePushed)
	defer manager.Close()
	
	manager.Open(context.Background())
	
	pushed := notification.Notification{ID: "n-x", Title: "Fine issued", Kind: notification.KindFineIssued}
	fetcher.set([]notification.Notification{pushed}, 4)
	conn.pushNotification(t, pushed)
	
	// Toast hiện ngay từ payload push, không chờ settle delay
	require.Eventually(t, func() bool {
		active := center.Active()
		return len(active) == 1 && active[0].ID == "n-x"
	}, time.Second, 5*time.Millisecond)
	
	// Counter vẫn là giá trị cũ cho tới khi refresh chạy xong
	require.Eventually(t, func() bool {
		return store.Snapshot().Unread == 4
	}, time.Second, 5*time.Millisecond)
	
	// Push trùng id chỉ thay thế toast, không chồng thêm
	conn.pushNotification(t, notification.Notification{ID: "n-x", Title: "Fine issued", Message: "updated"})
	require.Eventually(t, func() bool {
		active := center.Active()
		return len(active) == 1 && active[0].Message == "updated"
	}, time.Second, 5*time.Millisecond)
}
