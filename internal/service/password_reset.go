package service

import (
	"bitwise74/task-api/internal/mailer"
	"bitwise74/task-api/internal/model"
	"bitwise74/task-api/pkg/security"
	"context"
	"fmt"
	"time"
)

const resetSubject = "Recuperação de senha"

type ResetUserStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	SetResetToken(ctx context.Context, id uint, token string, at time.Time) (model.User, error)
}

type forgotPasswordData struct {
	Email string
	Token string
	Link  string
}

type PasswordReset struct {
	Users ResetUserStore
	Mail  mailer.Sender
	Now   func() time.Time
}

// ForgotPassword mints a reset token for the user registered under email, stores
// it and mails a link built from redirectURL. A missing user surfaces as
// repository.ErrNotFound so callers can tell it apart from other failures.
func (p *PasswordReset) ForgotPassword(ctx context.Context, email, redirectURL string) error {
	user, err := p.Users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := security.MakeResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token, %w", err)
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	user, err = p.Users.SetResetToken(ctx, user.ID, token, now())
	if err != nil {
		return fmt.Errorf("failed to store reset token, %w", err)
	}

	return p.Mail.Send(ctx, "forgot_password", forgotPasswordData{
		Email: email,
		Token: token,
		Link:  fmt.Sprintf("%s?token=%s", redirectURL, token),
	}, func(m *mailer.Message) {
		m.To(user.Email).Subject(resetSubject)
	})
}
