// Package mailertest provides a transport that keeps messages in memory
package mailertest

import (
	"bitwise74/task-api/internal/mailer"
	"context"
	"sync"
)

type Recorder struct {
	mu   sync.Mutex
	msgs []*mailer.Message

	// Err is returned from Deliver when set
	Err error
}

func (r *Recorder) Deliver(_ context.Context, m *mailer.Message) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.msgs = append(r.msgs, m)
	return nil
}

func (r *Recorder) Messages() []*mailer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*mailer.Message(nil), r.msgs...)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.msgs = nil
}
