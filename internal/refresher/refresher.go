package refresher

import (
	"context"
	"time"
	
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	
	"github.com/autosys-vn/autosys-client/internal/notification"
)

// Refresher chạy refresh định kỳ cho notification store.
// Đây là lưới an toàn cho các mark-seen lạc quan không rollback:
// mọi lệch pha client/server đều được server truth ghi đè ở lần chạy kế.
type Refresher struct {
	store     *notification.Store
	interval  time.Duration
	scheduler gocron.Scheduler
}

func NewRefresher(store *notification.Store, interval time.Duration) (*Refresher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	
	return &Refresher{
		store:     store,
		interval:  interval,
		scheduler: scheduler,
	}, nil
}

// Start bắt đầu chạy job refresh định kỳ.
func (r *Refresher) Start() error {
	_, err := r.scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(
			func() {
				if err := r.store.Refresh(context.Background()); err != nil {
					log.Error().Err(err).Msg("periodic notification refresh failed")
				}
			},
		),
	)
	if err != nil {
		return err
	}
	
	r.scheduler.Start()
	return nil
}

// Stop dừng job refresh định kỳ.
func (r *Refresher) Stop() error {
	return r.scheduler.Shutdown()
}
