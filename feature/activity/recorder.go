package activity

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultBuffer = 256

// Recorder persists audit events best-effort. Record enqueues and returns
// immediately; a background worker performs the write and drops failures
// silently, so logging can never block or fail a primary operation.
// Ordering across concurrent events is not guaranteed.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger

	events chan UserActivity
	done   chan struct{}
	once   sync.Once
}

// NewRecorder migrates the activity table and starts the background writer.
func NewRecorder(db *gorm.DB, logger *zap.Logger, buffer int) (*Recorder, error) {
	if err := db.AutoMigrate(&UserActivity{}); err != nil {
		return nil, fmt.Errorf("migrate activity table: %w", err)
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	r := &Recorder{
		db:     db,
		logger: logger,
		events: make(chan UserActivity, buffer),
		done:   make(chan struct{}),
	}
	go r.run()
	return r, nil
}

// Record enqueues an audit event. It never blocks: when the buffer is full
// the event is dropped.
func (r *Recorder) Record(actor, action, detail, origin string) {
	ev := UserActivity{
		Username:   actor,
		Action:     action,
		Details:    detail,
		IPAddress:  origin,
		OccurredAt: time.Now(),
	}

	select {
	case r.events <- ev:
	default:
		r.logger.Debug("Activity event dropped, buffer full",
			zap.String("actor", actor), zap.String("action", action))
	}
}

// Close stops accepting events, flushes the buffer and waits for the writer
// to finish.
func (r *Recorder) Close() {
	r.once.Do(func() {
		close(r.events)
	})
	<-r.done
}

func (r *Recorder) run() {
	defer close(r.done)
	for ev := range r.events {
		if err := r.db.Create(&ev).Error; err != nil {
			// Best-effort by contract: failures are logged at debug and
			// otherwise swallowed.
			r.logger.Debug("Activity write failed", zap.Error(err))
		}
	}
}
