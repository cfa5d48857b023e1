package validate

import "testing"

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   Platform
		wantOK bool
	}{
		{name: "exact match", input: "whatsapp", want: PlatformWhatsApp, wantOK: true},
		{name: "uppercase", input: "TELEGRAM", want: PlatformTelegram, wantOK: true},
		{name: "mixed case with whitespace", input: "  FaceBook  ", want: PlatformFacebook, wantOK: true},
		{name: "sms", input: "sms", want: PlatformSMS, wantOK: true},
		{name: "unknown platform", input: "myspace", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePlatform(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParsePlatform(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("ParsePlatform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidPlatformCoversWholeSet(t *testing.T) {
	t.Parallel()

	for p := range platforms {
		if !ValidPlatform(string(p)) {
			t.Fatalf("ValidPlatform(%q) = false, want true", p)
		}
	}
}
