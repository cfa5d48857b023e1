package validate

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "script tag markers stripped but body kept",
			input: `<script>alert("xss")</script>Hello`,
			want:  `alert("xss")Hello`,
		},
		{
			name:  "nested tags stripped",
			input: "<p>Hello <b>world</b></p>",
			want:  "Hello world",
		},
		{
			name:  "self closing tag stripped",
			input: "before<br/>after",
			want:  "beforeafter",
		},
		{
			name:  "whitespace runs collapse",
			input: "  hello   world \t again  ",
			want:  "hello world again",
		},
		{
			name:  "single interior space untouched",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "plain text passes through",
			input: "no markup here",
			want:  "no markup here",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only markup",
			input: "<div><span></span></div>",
			want:  "",
		},
		{
			name:  "comment dropped",
			input: "keep<!-- drop this -->me",
			want:  "keepme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<script>alert("xss")</script>Hello`,
		"<p>Hello <b>world</b></p>",
		"  spaced   out\ttext  ",
		"plain text",
		"",
		"entity stays &lt;encoded&gt;",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Fatalf("Sanitize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
