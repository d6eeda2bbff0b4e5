package messaging

import (
	"context"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	got := WhatsAppLink("+351 912-345-678", "Olá Ana, até amanhã!")
	want := "https://wa.me/351912345678?text=Ol%C3%A1%20Ana%2C%20at%C3%A9%20amanh%C3%A3%21"
	if got != want {
		t.Errorf("WhatsAppLink() = %s\nwant %s", got, want)
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("(+351) 21 000 00 00"); got != "351210000000" {
		t.Errorf("Digits() = %s", got)
	}
}

func TestUnconfiguredTwilio(t *testing.T) {
	s := NewTwilioSender("", "", "")
	if s.Enabled() {
		t.Fatal("sender without credentials must be disabled")
	}
	if _, err := s.Send(context.Background(), "351912345678", "x"); err == nil {
		t.Error("expected error from disabled sender")
	}
}
