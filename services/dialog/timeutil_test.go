package dialog

import (
	"errors"
	"testing"
)

func TestConvertToUTC(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		local string
		utc   string
	}{
		{"positive offset", "2025-01-27T14:00:00+01:00", "2025-01-27T14:00:00+01:00", "2025-01-27T13:00:00+00:00"},
		{"negative offset", "2025-01-27T14:00:00-05:00", "2025-01-27T14:00:00-05:00", "2025-01-27T19:00:00+00:00"},
		{"already utc", "2025-01-27T14:00:00+00:00", "2025-01-27T14:00:00+00:00", "2025-01-27T14:00:00+00:00"},
		{"zulu suffix", "2025-01-27T14:00:00Z", "2025-01-27T14:00:00Z", "2025-01-27T14:00:00+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local, utc, err := ConvertToUTC(tt.in)
			if err != nil {
				t.Fatalf("ConvertToUTC(%q) returned error: %v", tt.in, err)
			}
			if local != tt.local {
				t.Errorf("local = %q, want %q", local, tt.local)
			}
			if utc != tt.utc {
				t.Errorf("utc = %q, want %q", utc, tt.utc)
			}
		})
	}
}

func TestConvertToUTCInvalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow at 1 pm", "2025-01-27", "2025-01-27 14:00"} {
		if _, _, err := ConvertToUTC(in); !errors.Is(err, ErrInvalidDateTime) {
			t.Errorf("ConvertToUTC(%q) error = %v, want ErrInvalidDateTime", in, err)
		}
	}
}

func TestFormatDisplayTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-27T14:00:00+01:00", "2025-01-27 at 02:00 PM"},
		{"2025-01-29T09:30:00+01:00", "2025-01-29 at 09:30 AM"},
		{"", "unknown"},
		{"not-a-time", "unknown"},
	}

	for _, tt := range tests {
		if got := formatDisplayTime(tt.in); got != tt.want {
			t.Errorf("formatDisplayTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
