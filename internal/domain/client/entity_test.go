package client

import "testing"

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ana Silva", "AS"},
		{"Maria", "M"},
		{"ana maria silva", "AM"},
		{"  joão   pedro ", "JP"},
		{"Érica Lima", "ÉL"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initials(tt.name); got != tt.want {
				t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseStatusDefaultsToActive(t *testing.T) {
	got, err := ParseStatus("")
	if err != nil || got != StatusActive {
		t.Fatalf("ParseStatus(\"\") = %q, %v", got, err)
	}
	if _, err := ParseStatus("archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
