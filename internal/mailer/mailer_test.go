package mailer_test

import (
	"bitwise74/task-api/internal/mailer"
	"bitwise74/task-api/internal/mailer/mailertest"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRendersViewAndAppliesBuilder(t *testing.T) {
	rec := &mailertest.Recorder{}
	m, err := mailer.New(rec, "noreply@example.com", "Example")
	require.NoError(t, err)

	err = m.Send(context.Background(), "new_task", struct {
		Username      string
		Title         string
		HasAttachment bool
	}{"ana", "Escrever testes", true}, func(msg *mailer.Message) {
		msg.To("ana@example.com").
			Subject("Nova tarefa para você").
			Attach("briefing.pdf", []byte("%PDF"))
	})
	require.NoError(t, err)

	msgs := rec.Messages()
	require.Len(t, msgs, 1)

	msg := msgs[0]
	assert.Equal(t, "ana@example.com", msg.ToAddress)
	assert.Equal(t, "noreply@example.com", msg.FromAddress)
	assert.Equal(t, "Example", msg.FromName)
	assert.Equal(t, "Nova tarefa para você", msg.SubjectText)
	assert.Contains(t, msg.HTML, "Escrever testes")
	assert.Contains(t, msg.HTML, "anexo")
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "briefing.pdf", msg.Attachments[0].Filename)
}

func TestSendWithoutRecipient(t *testing.T) {
	rec := &mailertest.Recorder{}
	m, err := mailer.New(rec, "noreply@example.com", "Example")
	require.NoError(t, err)

	err = m.Send(context.Background(), "new_task", nil, nil)
	assert.ErrorIs(t, err, mailer.ErrNoRecipient)
	assert.Empty(t, rec.Messages())
}

func TestSendUnknownView(t *testing.T) {
	m, err := mailer.New(&mailertest.Recorder{}, "a@example.com", "A")
	require.NoError(t, err)

	err = m.Send(context.Background(), "missing", nil, func(msg *mailer.Message) { msg.To("b@example.com") })
	assert.Error(t, err)
}

type blockingTransport struct {
	release chan struct{}
	rec     mailertest.Recorder
}

func (b *blockingTransport) Deliver(ctx context.Context, m *mailer.Message) error {
	<-b.release
	return b.rec.Deliver(ctx, m)
}

func TestQueueDeliversInBackground(t *testing.T) {
	bt := &blockingTransport{release: make(chan struct{})}
	q := mailer.NewQueue(bt, 1, 1)
	q.StartWorkerPool()

	require.NoError(t, q.Deliver(context.Background(), &mailer.Message{ToAddress: "a@example.com"}))

	// The single worker holds the first message, the buffer holds the second
	require.Eventually(t, func() bool {
		return q.Deliver(context.Background(), &mailer.Message{ToAddress: "b@example.com"}) == nil
	}, time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, q.Deliver(context.Background(), &mailer.Message{ToAddress: "c@example.com"}), mailer.ErrQueueFull)

	close(bt.release)
	q.Close()

	assert.Len(t, bt.rec.Messages(), 2)
	assert.Equal(t, 0, q.Pending())
	assert.ErrorIs(t, q.Deliver(context.Background(), &mailer.Message{}), mailer.ErrQueueClosed)
}

func TestQueueLogsDeliveryErrors(t *testing.T) {
	rec := &mailertest.Recorder{Err: errors.New("smtp down")}
	q := mailer.NewQueue(rec, 2, 4)
	q.StartWorkerPool()

	assert.NoError(t, q.Deliver(context.Background(), &mailer.Message{ToAddress: "a@example.com"}))
	q.Close()

	assert.Empty(t, rec.Messages())
}
