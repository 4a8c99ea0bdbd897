package mailer

import (
	"context"
	"errors"
	"io"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTP delivers messages through an SMTP server, dialing once per message
type SMTP struct {
	dialer *gomail.Dialer
}

func NewSMTP(c SMTPConfig) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(c.Host, c.Port, c.Username, c.Password),
	}
}

func (s *SMTP) Deliver(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if msg.FromAddress == msg.ToAddress {
		return errors.New("invalid email address")
	}

	return s.dialer.DialAndSend(build(msg))
}

func build(msg *Message) *gomail.Message {
	m := gomail.NewMessage()

	m.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	m.SetHeader("To", msg.ToAddress)
	m.SetHeader("Subject", msg.SubjectText)
	m.SetBody("text/html", msg.HTML)

	for _, a := range msg.Attachments {
		content := a.Content
		m.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	return m
}
