package notification

import (
	"context"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"

	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real implementation of Sender using the webpush
// library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool pushes dashboard notifications to the target user's browser
// subscriptions. Jobs carry notification ids; the pool looks the rest up in
// the store.
type WorkerPool struct {
	size    int
	jobs    chan string
	store   *store.Store
	webpush *webpush.Options
	sender  Sender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, s *store.Store, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan string, size),
		store:   s,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Worker %d started", id)
	for {
		select {
		case notificationID := <-wp.jobs:
			log.Printf("Worker %d processing notification %s", id, notificationID)
			wp.push(ctx, notificationID)
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a notification for push delivery. It blocks only when
// the job buffer is full.
func (wp *WorkerPool) Dispatch(notificationID string) {
	wp.jobs <- notificationID
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan string {
	return wp.jobs
}

// push fans the notification out to every subscription the target user
// registered.
func (wp *WorkerPool) push(ctx context.Context, notificationID string) {
	if wp.webpush == nil || wp.webpush.VAPIDPublicKey == "" {
		return
	}

	n, ok := wp.store.Notification(notificationID)
	if !ok {
		log.Printf("notification %s vanished before push", notificationID)
		return
	}

	subs := wp.store.SubscriptionsForUser(n.UserID)
	if len(subs) == 0 {
		return
	}

	log.Printf("Sending %d pushes for notification %s", len(subs), n.ID)
	for _, sub := range subs {
		wp.send(ctx, sub, []byte(n.Message))
	}
}

func (wp *WorkerPool) send(_ context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Expired subscriptions are dropped on 410 Gone.
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		wp.store.DeleteSubscription(sub.Endpoint)
	}
}
