package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ngobridge/platform-go/internal/domain/notification"
	"github.com/ngobridge/platform-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

type recorderMailer struct {
	sent []string
	err  error
}

func (m *recorderMailer) Send(_ context.Context, to, _, _, _ string) error {
	m.sent = append(m.sent, to)
	return m.err
}

type recorderPusher struct {
	pushed []uint
}

func (p *recorderPusher) Push(userID uint, _ interface{}) {
	p.pushed = append(p.pushed, userID)
}

// --------------------- deliver ---------------------

func TestDeliver_StoreFailureStillAttemptsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	repo := mock.NewMockNotificationRepo(ctrl)
	repo.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	m := &recorderMailer{}
	p := &recorderPusher{}
	d := NewDispatcher(repo, m, p, 1)

	d.deliver(context.Background(), Event{
		UserID:  5,
		Message: "Your application was approved",
		Email:   "ngo@hope.org",
		Subject: "Application Update",
		Text:    "Approved",
	})

	// nothing to push without a stored notification, but email still goes out
	assert.Empty(t, p.pushed)
	assert.Equal(t, []string{"ngo@hope.org"}, m.sent)
}

func TestDeliver_MailerFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	repo := mock.NewMockNotificationRepo(ctrl)
	repo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(n *notification.Notification) error {
			n.ID = 1
			return nil
		})

	m := &recorderMailer{err: errors.New("ses throttled")}
	p := &recorderPusher{}
	d := NewDispatcher(repo, m, p, 1)

	d.deliver(context.Background(), Event{
		UserID:  5,
		Message: "Your application was approved",
		Email:   "ngo@hope.org",
		Subject: "Application Update",
		Text:    "Approved",
	})

	assert.Equal(t, []uint{5}, p.pushed)
	assert.Equal(t, []string{"ngo@hope.org"}, m.sent)
}

func TestDeliver_NoEmailSkipsMailer(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	repo := mock.NewMockNotificationRepo(ctrl)
	repo.EXPECT().Create(gomock.Any()).Return(nil)

	m := &recorderMailer{}
	d := NewDispatcher(repo, m, &recorderPusher{}, 1)

	d.deliver(context.Background(), Event{UserID: 5, Message: "visible in-app only"})

	assert.Empty(t, m.sent)
}

// --------------------- Publish ---------------------

func TestPublish_FullBufferDropsWithoutBlocking(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	repo := mock.NewMockNotificationRepo(ctrl)
	d := NewDispatcher(repo, &recorderMailer{}, &recorderPusher{}, 1)

	// worker not started: the first event fills the buffer
	d.Publish(Event{UserID: 1, Message: "first"})

	done := make(chan struct{})
	go func() {
		d.Publish(Event{UserID: 2, Message: "dropped"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full buffer")
	}
	assert.Len(t, d.events, 1)

	queued := <-d.events
	assert.Equal(t, uint(1), queued.UserID)
}

func TestStart_DrainsPublishedEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	stored := make(chan *notification.Notification, 1)
	repo := mock.NewMockNotificationRepo(ctrl)
	repo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(n *notification.Notification) error {
			stored <- n
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDispatcher(repo, &recorderMailer{}, &recorderPusher{}, 4)
	d.Start(ctx)

	d.Publish(Event{UserID: 7, Message: "New application received", Link: "/funder/funding/10/applications"})

	select {
	case n := <-stored:
		assert.Equal(t, uint(7), n.UserID)
		assert.Equal(t, "New application received", n.Message)
		assert.Equal(t, "/funder/funding/10/applications", n.Link)
	case <-time.After(time.Second):
		t.Fatal("dispatcher never delivered the published event")
	}
}
