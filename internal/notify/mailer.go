package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
)

// Mailer sends the studio's transactional mail over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, user, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *Mailer) SendConfirmation(ctx context.Context, r booking.Reservation) error {
	subject := "Confirmación de turno - Glow up Estética"
	if err := m.send(ctx, r.Email, subject, confirmationBody(r)); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}
	return nil
}

func (m *Mailer) SendReminder(ctx context.Context, r booking.Reservation) error {
	subject := "Recordatorio: Tu turno es mañana - Glow up Estética"
	if err := m.send(ctx, r.Email, subject, reminderBody(r)); err != nil {
		return fmt.Errorf("send reminder mail: %w", err)
	}
	return nil
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
