package reminder

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/runtix/runtix/app/repository"
	"github.com/runtix/runtix/internal/pkg/mail"
)

// every day at 07:00 local time
const reminderSchedule = "0 7 * * *"

// SendFunc delivers a reminder email; injected for tests.
type SendFunc func(to string, eventName string) error

// Scheduler sends pre-event reminder emails to runners who opted in.
type Scheduler struct {
	cron *cron.Cron
	repo repository.NotificationPreferenceRepository
	send SendFunc
}

// NewScheduler creates a reminder scheduler over the preference repository.
// A nil send falls back to the SMTP mailer.
func NewScheduler(repo repository.NotificationPreferenceRepository, send SendFunc) *Scheduler {
	if send == nil {
		send = mail.SendEventReminder
	}
	return &Scheduler{
		cron: cron.New(),
		repo: repo,
		send: send,
	}
}

// Start schedules the daily job.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(reminderSchedule, s.Run); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Reminder scheduler started (%s)", reminderSchedule)
	return nil
}

// Stop halts the scheduler; running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Run sends reminders for events taking place tomorrow. Failures are logged
// per recipient; one bad address must not block the rest.
func (s *Scheduler) Run() {
	tomorrow := time.Now().AddDate(0, 0, 1)

	recipients, err := s.repo.DueReminders(tomorrow)
	if err != nil {
		log.Printf("Failed to collect reminder recipients: %v", err)
		return
	}

	sent := 0
	for _, r := range recipients {
		if err := s.send(r.Email, r.EventName); err != nil {
			log.Printf("Failed to send reminder to %s for event %q: %v", r.Email, r.EventName, err)
			continue
		}
		sent++
	}
	log.Printf("Reminder run complete: %d/%d reminders sent", sent, len(recipients))
}
