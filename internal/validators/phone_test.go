package validators

import "testing"

func TestPhoneOK(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"", true},
		{"+351 912 345 678", true},
		{"(21) 99999-0000", true},
		{"912", false},
		{"91234567a", false},
		{"   ", false},
		{"1234567890123456", false},
	}
	for _, tt := range tests {
		if got := PhoneOK(tt.phone); got != tt.want {
			t.Errorf("PhoneOK(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestEmailDomainOKRejectsMalformed(t *testing.T) {
	for _, email := range []string{"semarroba", "fim@"} {
		if EmailDomainOK(email) {
			t.Errorf("EmailDomainOK(%q) = true", email)
		}
	}
}
