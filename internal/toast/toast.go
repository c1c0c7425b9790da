package toast

import (
	"sort"
	"sync"
	"time"
	
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	
	"github.com/autosys-vn/autosys-client/internal/notification"
)

// Toast là một cảnh báo tạm thời trên màn hình, keyed theo id thông báo.
type Toast struct {
	ID        string
	Title     string
	Message   string
	Kind      string
	CreatedOn time.Time
	shownAt   time.Time
}

// Age renders a human label for when the notification was created.
func (t Toast) Age() string {
	if t.CreatedOn.IsZero() {
		return ""
	}
	return humanize.Time(t.CreatedOn)
}

// Center renders transient alerts from push payloads. It is
// fire-and-forget: nothing here touches the unread counter.
type Center struct {
	duration time.Duration
	
	mu          sync.Mutex
	active      map[string]Toast
	timers      map[string]*time.Timer
	subscribers map[chan []Toast]bool
	closed      bool
}

func NewCenter(duration time.Duration) *Center {
	return &Center{
		duration:    duration,
		active:      make(map[string]Toast),
		timers:      make(map[string]*time.Timer),
		subscribers: make(map[chan []Toast]bool),
	}
}

// ShowNotification renders a toast straight from a push payload.
func (c *Center) ShowNotification(n notification.Notification) {
	c.Show(Toast{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Kind:      n.Kind,
		CreatedOn: n.CreatedOn,
	})
}

// Show displays a toast. A duplicate id replaces the active toast and
// resets its dismiss timer instead of stacking a second alert.
func (c *Center) Show(t Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	
	if timer, ok := c.timers[t.ID]; ok {
		timer.Stop()
	}
	
	t.shownAt = time.Now()
	c.active[t.ID] = t
	
	id := t.ID
	c.timers[id] = time.AfterFunc(c.duration, func() {
		c.Dismiss(id)
	})
	
	log.Debug().Str("id", t.ID).Str("kind", t.Kind).Msg("toast shown")
	c.broadcastLocked()
}

// Dismiss removes a toast, whether by timer or by the user.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	
	if _, ok := c.active[id]; !ok {
		return
	}
	
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	delete(c.active, id)
	c.broadcastLocked()
}

// Active returns the visible toasts, oldest first.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeLocked()
}

// Subscribe registers a renderer; the cancel func unregisters it.
func (c *Center) Subscribe() (<-chan []Toast, func()) {
	ch := make(chan []Toast, 8)
	
	c.mu.Lock()
	c.subscribers[ch] = true
	ch <- c.activeLocked()
	c.mu.Unlock()
	
	cancel := func() {
		c.mu.Lock()
		if c.subscribers[ch] {
			delete(c.subscribers, ch)
			close(ch)
		}
		c.mu.Unlock()
	}
	return ch, cancel
}

// Close stops every dismiss timer; no callback fires afterwards.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	
	for _, timer := range c.timers {
		timer.Stop()
	}
	c.timers = nil
	c.active = nil
	
	for ch := range c.subscribers {
		close(ch)
	}
	c.subscribers = nil
}

func (c *Center) activeLocked() []Toast {
	toasts := make([]Toast, 0, len(c.active))
	for _, t := range c.active {
		toasts = append(toasts, t)
	}
	sort.Slice(toasts, func(i, j int) bool {
		return toasts[i].shownAt.Before(toasts[j].shownAt)
	})
	return toasts
}

func (c *Center) broadcastLocked() {
	toasts := c.activeLocked()
	for ch := range c.subscribers {
		select {
		case ch <- toasts:
		default:
		}
	}
}
