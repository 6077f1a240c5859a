package utils

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2025-03-01", "2025-03-01", true},
		{" 2025-03-01 ", "2025-03-01", true},
		{"2025-03-01T23:30:00Z", "2025-03-01", true},
		{"2025-03-01T23:30:00+07:00", "2025-03-01", true},
		{"2025-02-30", "", false},
		{"03/01/2025", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseDate(%q) err = %v", tc.in, err)
			continue
		}
		if tc.ok && FormatDate(got) != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, FormatDate(got), tc.want)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) should return ErrInvalidDate, got %v", tc.in, err)
		}
	}
}

func TestEachNightHalfOpen(t *testing.T) {
	in, _ := ParseDate("2024-02-27")
	out, _ := ParseDate("2024-03-02")

	nights := EachNight(in, out)
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}
	if strings.Join(nights, ",") != strings.Join(want, ",") {
		t.Fatalf("EachNight = %v, want %v", nights, want)
	}
	if Nights(in, out) != 4 {
		t.Errorf("Nights = %d, want 4", Nights(in, out))
	}
	if len(EachNight(in, in)) != 0 {
		t.Error("zero-night range should have no nights")
	}
}

func TestEachNightLongStay(t *testing.T) {
	in := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	out := in.AddDate(0, 3, 0)
	nights := EachNight(in, out)
	if len(nights) != Nights(in, out) {
		t.Fatalf("got %d nights, want %d", len(nights), Nights(in, out))
	}
	if nights[len(nights)-1] != "2026-02-14" {
		t.Errorf("last night = %s", nights[len(nights)-1])
	}
}

func TestMailerSendsMultipart(t *testing.T) {
	m := NewMailer(SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "bot@example.com", Password: "x", FromName: "Grand Azure"})

	var gotAddr string
	var gotTo []string
	var gotMsg string
	m.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	err := m.SendBookingConfirmation(context.Background(), BookingMail{
		BookingID: 12, GuestName: "Jane <b>", GuestEmail: "jane@example.com",
		RoomName: "Standard Room", CheckInDate: "2025-01-10", CheckOutDate: "2025-01-13",
		Nights: 3, TotalCents: 47700,
	})
	if err != nil {
		t.Fatalf("SendBookingConfirmation: %v", err)
	}
	if gotAddr != "smtp.example.com:587" || len(gotTo) != 1 || gotTo[0] != "jane@example.com" {
		t.Errorf("unexpected envelope %s %v", gotAddr, gotTo)
	}
	for _, want := range []string{"Booking Confirmation #12", "Total: 477.00", "multipart/alternative", "Jane &lt;b&gt;"} {
		if !strings.Contains(gotMsg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestMailerFlattensHeaderLineBreaks(t *testing.T) {
	for _, name := range []string{"Grand\nBcc: victim@example.com", "Grand\rBcc: victim@example.com", "Grand\r\nBcc: victim@example.com"} {
		m := NewMailer(SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "bot@example.com", Password: "x", FromName: name})
		var gotMsg string
		m.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
			gotMsg = string(msg)
			return nil
		}

		if err := m.SendBookingConfirmation(context.Background(), BookingMail{BookingID: 3, GuestEmail: "jane@example.com"}); err != nil {
			t.Fatalf("SendBookingConfirmation: %v", err)
		}
		headers := strings.SplitN(gotMsg, "\r\n\r\n", 2)[0]
		for _, line := range strings.Split(headers, "\r\n") {
			if strings.ContainsAny(line, "\r\n") || strings.HasPrefix(line, "Bcc:") {
				t.Errorf("from name %q leaked into headers: %q", name, line)
			}
		}
		if !strings.Contains(headers, "From: Grand Bcc: victim@example.com <bot@example.com>") {
			t.Errorf("from name %q not flattened:\n%s", name, headers)
		}
	}
}

func TestMailerWithoutSMTPOnlyLogs(t *testing.T) {
	m := NewMailer(SMTPConfig{})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called without SMTP settings")
		return nil
	}
	if err := m.SendBookingConfirmation(context.Background(), BookingMail{BookingID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var nilMailer *Mailer
	if err := nilMailer.SendBookingConfirmation(context.Background(), BookingMail{}); err != nil {
		t.Fatalf("nil mailer: %v", err)
	}
}
