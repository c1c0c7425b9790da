package notification

import (
	"context"
	"sync"
	"time"
	
	"github.com/rs/zerolog/log"
)

// Fetcher là phần REST mà store cần: danh sách chưa đọc và số lượng chưa đọc.
type Fetcher interface {
	ListUnseen(ctx context.Context) ([]Notification, error)
	CountUnseen(ctx context.Context) (int, error)
}

// Snapshot is the immutable view handed to subscribers. Preview is a
// capped subset of the true unseen list; Unread comes from the count
// endpoint and is never derived from len(Preview).
type Snapshot struct {
	Preview []Notification
	Unread  int
}

// Store is the process-wide cache reconciling push hints with REST
// truth. One store per signed-in session; every UI consumer subscribes
// to the same store so unread counts cannot diverge.
type Store struct {
	fetcher     Fetcher
	previewSize int
	settleDelay time.Duration
	
	mu          sync.Mutex
	preview     []Notification
	unread      int
	subscribers map[chan Snapshot]bool
	timers      map[*time.Timer]bool
	closed      bool
}

func NewStore(fetcher Fetcher, previewSize int, settleDelay time.Duration) *Store {
	return &Store{
		fetcher:     fetcher,
		previewSize: previewSize,
		settleDelay: settleDelay,
		subscribers: make(map[chan Snapshot]bool),
		timers:      make(map[*time.Timer]bool),
	}
}

// Refresh fetches the unseen preview and the unread count, then
// replaces both together. On any fetch error the previous cache is
// kept: stale-but-present beats empty-and-wrong.
func (s *Store) Refresh(ctx context.Context) error {
	unseen, err := s.fetcher.ListUnseen(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch unseen notifications")
		return err
	}
	
	count, err := s.fetcher.CountUnseen(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch unseen count")
		return err
	}
	
	if len(unseen) > s.previewSize {
		unseen = unseen[:s.previewSize]
	}
	
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	// Thay thế toàn bộ cache trong một lần, không merge từng trường
	s.preview = unseen
	s.unread = count
	s.broadcastLocked()
	s.mu.Unlock()
	
	return nil
}

// MarkOneSeenLocally applies the optimistic local half of marking a
// notification seen. The caller is responsible for also invoking the
// REST mark-one-seen operation.
func (s *Store) MarkOneSeenLocally(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	
	for i, n := range s.preview {
		if n.ID == id {
			s.preview = append(s.preview[:i], s.preview[i+1:]...)
			break
		}
	}
	if s.unread > 0 {
		s.unread--
	}
	s.broadcastLocked()
}

// MarkAllSeenLocally clears the preview and zeroes the counter; the
// caller also invokes the REST mark-all-seen operation.
func (s *Store) MarkAllSeenLocally() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	
	s.preview = nil
	s.unread = 0
	s.broadcastLocked()
}

// HandlePushed schedules a delayed Refresh for a pushed notification.
// The push payload is never spliced into the cache directly: it may
// race ahead of the server's own write-through, so the store waits for
// the settle delay and re-reads server truth instead.
func (s *Store) HandlePushed(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	
	log.Debug().Str("id", n.ID).Str("kind", n.Kind).Msg("push hint received, scheduling refresh")
	
	var timer *time.Timer
	timer = time.AfterFunc(s.settleDelay, func() {
		s.mu.Lock()
		closed := s.closed
		delete(s.timers, timer)
		s.mu.Unlock()
		if closed {
			return
		}
		
		if err := s.Refresh(context.Background()); err != nil {
			log.Error().Err(err).Str("id", n.ID).Msg("settle refresh failed")
		}
	})
	s.timers[timer] = true
}

// Subscribe registers a consumer. The returned cancel func must be
// called when the consumer goes away. Sends never block: a slow
// consumer misses intermediate snapshots but always observes the
// latest one eventually.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)
	
	s.mu.Lock()
	s.subscribers[ch] = true
	ch <- s.snapshotLocked()
	s.mu.Unlock()
	
	cancel := func() {
		s.mu.Lock()
		if s.subscribers[ch] {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Snapshot returns the current cache state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close stops every pending settle timer. No timer callback mutates
// state after Close returns; they observe the closed flag under the
// same lock.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	
	for timer := range s.timers {
		timer.Stop()
	}
	s.timers = nil
	
	for ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
}

func (s *Store) snapshotLocked() Snapshot {
	preview := make([]Notification, len(s.preview))
	copy(preview, s.preview)
	return Snapshot{Preview: preview, Unread: s.unread}
}

func (s *Store) broadcastLocked() {
	snapshot := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Consumer chậm thì bỏ qua snapshot trung gian
		}
	}
}
