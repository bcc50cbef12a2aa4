package reminder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runtix/runtix/app/models"
	"github.com/runtix/runtix/app/repository"
)

type fakePreferenceRepo struct {
	recipients []repository.ReminderRecipient
	err        error
	askedFor   time.Time
}

func (f *fakePreferenceRepo) Upsert(pref *models.NotificationPreference) error {
	return nil
}

func (f *fakePreferenceRepo) DueReminders(eventDate time.Time) ([]repository.ReminderRecipient, error) {
	f.askedFor = eventDate
	return f.recipients, f.err
}

func TestRun_SendsToAllRecipients(t *testing.T) {
	repo := &fakePreferenceRepo{
		recipients: []repository.ReminderRecipient{
			{Email: "a@example.com", EventName: "City Marathon"},
			{Email: "b@example.com", EventName: "City Marathon"},
		},
	}

	var sent []string
	s := NewScheduler(repo, func(to, eventName string) error {
		sent = append(sent, to)
		return nil
	})

	s.Run()

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, sent)

	// the job targets events happening tomorrow
	wantDay := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	assert.Equal(t, wantDay, repo.askedFor.Format("2006-01-02"))
}

func TestRun_OneFailureDoesNotBlockOthers(t *testing.T) {
	repo := &fakePreferenceRepo{
		recipients: []repository.ReminderRecipient{
			{Email: "bad@example.com", EventName: "Night Run 10K"},
			{Email: "good@example.com", EventName: "Night Run 10K"},
		},
	}

	var sent []string
	s := NewScheduler(repo, func(to, eventName string) error {
		if to == "bad@example.com" {
			return errors.New("smtp: mailbox unavailable")
		}
		sent = append(sent, to)
		return nil
	})

	s.Run()

	assert.Equal(t, []string{"good@example.com"}, sent)
}

func TestRun_RepoFailure(t *testing.T) {
	repo := &fakePreferenceRepo{err: errors.New("db gone")}

	called := false
	s := NewScheduler(repo, func(to, eventName string) error {
		called = true
		return nil
	})

	s.Run()
	assert.False(t, called, "no sends on repository failure")
}

func TestSchedule_IsValidCronExpression(t *testing.T) {
	repo := &fakePreferenceRepo{}
	s := NewScheduler(repo, func(string, string) error { return nil })

	require.NoError(t, s.Start())
	s.Stop()
}
