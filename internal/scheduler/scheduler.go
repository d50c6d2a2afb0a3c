// Package scheduler runs the due-task reminder loop: incomplete kanban tasks
// falling due inside the reminder window get one task_due notification for
// their assignee.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/FCT-TaskManager/Backend/internal/services"
)

const (
	scanInterval   = time.Hour
	reminderWindow = 24 * time.Hour
)

type Scheduler struct {
	notifications *services.NotificationService
	ctx           context.Context
	cancel        context.CancelFunc
}

func New(notifications *services.NotificationService) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		notifications: notifications,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Start runs an immediate scan and then keeps scanning on the interval until
// Stop is called.
func (s *Scheduler) Start() {
	go func() {
		s.scan()

		ticker := time.NewTicker(scanInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.scan()
			}
		}
	}()

	log.Info().Dur("interval", scanInterval).Msg("due-task reminder scheduler started")
}

func (s *Scheduler) Stop() {
	s.cancel()
	log.Info().Msg("due-task reminder scheduler stopped")
}

func (s *Scheduler) scan() {
	sent, err := s.notifications.EmitDueReminders(reminderWindow)
	if err != nil {
		log.Error().Err(err).Msg("due-task reminder scan failed")
		return
	}

	if sent > 0 {
		log.Info().Int("sent", sent).Msg("due-task reminders emitted")
	}
}
