package utils

import (
	"context"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"grand-azure-hotel/logger"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func (c SMTPConfig) configured() bool {
	return c.Host != "" && c.Port != "" && c.Username != "" && c.Password != ""
}

// BookingMail carries what the confirmation email shows.
type BookingMail struct {
	BookingID    uint
	GuestName    string
	GuestEmail   string
	RoomName     string
	CheckInDate  string
	CheckOutDate string
	Nights       int
	TotalCents   int
}

// headerSafe flattens line breaks so values cannot start a new mail header.
var headerSafe = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

type Mailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// SendBookingConfirmation mails a multipart confirmation. Without SMTP settings
// the send is only logged.
func (m *Mailer) SendBookingConfirmation(ctx context.Context, b BookingMail) error {
	if m == nil {
		return nil
	}
	if !m.cfg.configured() {
		logger.FromContext(ctx).Info().
			Str("to", b.GuestEmail).
			Uint("booking_id", b.BookingID).
			Str("stay", b.CheckInDate+" - "+b.CheckOutDate).
			Msg("[MOCK EMAIL] booking confirmation")
		return nil
	}

	safe := func(s string) string {
		return headerSafe.Replace(strings.TrimSpace(s))
	}

	from := fmt.Sprintf("%s <%s>", safe(m.cfg.FromName), m.cfg.Username)
	subject := fmt.Sprintf("Booking Confirmation #%d", b.BookingID)
	total := fmt.Sprintf("%d.%02d", b.TotalCents/100, b.TotalCents%100)
	boundary := "----=_AZURE_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for booking with us! Here are your booking details:\n\n"+
			"Booking Number: %d\n"+
			"Room: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Nights: %d\n"+
			"Total: %s\n\n"+
			"Best regards,\n%s",
		safe(b.GuestName), b.BookingID, safe(b.RoomName),
		b.CheckInDate, b.CheckOutDate, b.Nights, total, safe(m.cfg.FromName),
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <h2>Booking Confirmation</h2>
  <p>Dear %s,</p>
  <p><b>Booking Number:</b> %d</p>
  <p><b>Room:</b> %s</p>
  <p><b>Check-In:</b> %s</p>
  <p><b>Check-Out:</b> %s</p>
  <p><b>Nights:</b> %d</p>
  <p><b>Total:</b> %s</p>
  <p>Best regards,<br>%s</p>
</body>
</html>`,
		html.EscapeString(safe(b.GuestName)), b.BookingID, html.EscapeString(safe(b.RoomName)),
		b.CheckInDate, b.CheckOutDate, b.Nights, total, html.EscapeString(safe(m.cfg.FromName)),
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", safe(b.GuestEmail)))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")
	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.Username, []string{safe(b.GuestEmail)}, []byte(sb.String())); err != nil {
		return fmt.Errorf("send confirmation to %s: %w", b.GuestEmail, err)
	}

	logger.FromContext(ctx).Info().Str("to", b.GuestEmail).Uint("booking_id", b.BookingID).Msg("confirmation email sent")
	return nil
}
