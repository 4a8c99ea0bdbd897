package mailer

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
)

//go:embed views/*.html
var viewFS embed.FS

var ErrNoRecipient = errors.New("mail has no recipient")

// Sender is what the rest of the app depends on to send mail
type Sender interface {
	Send(ctx context.Context, view string, data any, build func(m *Message)) error
}

// Transport delivers a fully built message
type Transport interface {
	Deliver(ctx context.Context, m *Message) error
}

type Mailer struct {
	transport   Transport
	views       *template.Template
	fromAddress string
	fromName    string
}

// New returns a Mailer using the embedded views. fromAddress and fromName are
// used unless the build callback sets its own sender.
func New(t Transport, fromAddress, fromName string) (*Mailer, error) {
	views, err := template.ParseFS(viewFS, "views/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail views, %w", err)
	}

	return &Mailer{
		transport:   t,
		views:       views,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

// Send renders view with data, lets build set recipients and headers, and
// delivers the result
func (m *Mailer) Send(ctx context.Context, view string, data any, build func(msg *Message)) error {
	msg := &Message{
		View:        view,
		FromAddress: m.fromAddress,
		FromName:    m.fromName,
	}

	if build != nil {
		build(msg)
	}

	if msg.ToAddress == "" {
		return ErrNoRecipient
	}

	var buf bytes.Buffer
	if err := m.views.ExecuteTemplate(&buf, view+".html", data); err != nil {
		return fmt.Errorf("failed to render mail view %s, %w", view, err)
	}
	msg.HTML = buf.String()

	return m.transport.Deliver(ctx, msg)
}
