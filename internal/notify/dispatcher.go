package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

const sendTimeout = 15 * time.Second

type registrationJob struct {
	email    string
	username string
}

// Dispatcher runs a single background worker draining a bounded queue of
// registration notifications. Enqueueing never blocks a request: when
// the queue is full the job is dropped and logged, the registration
// itself has already committed and is not rolled back.
type Dispatcher struct {
	mailer Mailer
	jobs   chan registrationJob
	wg     sync.WaitGroup
}

func NewDispatcher(mailer Mailer, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		mailer: mailer,
		jobs:   make(chan registrationJob, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// NotifyRegistered enqueues a registration email. Fire-and-forget.
func (d *Dispatcher) NotifyRegistered(email, username string) {
	select {
	case d.jobs <- registrationJob{email: email, username: username}:
	default:
		log.Printf("notify: queue full, dropping registration mail for %s", username)
	}
}

// Close stops accepting jobs and waits for the worker to drain the queue.
func (d *Dispatcher) Close() {
	close(d.jobs)
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for job := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		subject := "Successfully signed up"
		body := fmt.Sprintf("Hi %s! You have successfully signed up to the shop API.", job.username)
		if err := d.mailer.Send(ctx, job.email, subject, body); err != nil {
			log.Printf("notify: send registration mail to %s: %v", job.email, err)
		}
		cancel()
	}
}
