package cleaning

import (
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "whitespace only",
			text: "  \n\t \n  ",
			want: "",
		},
		{
			name: "non-breaking spaces become plain spaces",
			text: "annual leave policy",
			want: "annual leave policy",
		},
		{
			name: "windows and mac line endings become unix",
			text: "line one\r\nline two\rline three",
			want: "line one\nline two\nline three",
		},
		{
			name: "space runs collapse and lines are trimmed",
			text: "  too   many\t\tspaces  \n  next line  ",
			want: "too many spaces\nnext line",
		},
		{
			name: "three or more newlines collapse to paragraph break",
			text: "para one\n\n\n\npara two",
			want: "para one\n\npara two",
		},
		{
			name: "page number lines removed",
			text: "Policy text.\nPage 3\nMore text.",
			want: "Policy text.\nMore text.",
		},
		{
			name: "page n of m lines removed case insensitively",
			text: "Intro.\npage 2 of 10\nBody.",
			want: "Intro.\nBody.",
		},
		{
			name: "bare number lines removed",
			text: "Heading\n42\nBody text.",
			want: "Heading\nBody text.",
		},
		{
			name: "numbers inside lines survive",
			text: "Employees get 25 days of leave.",
			want: "Employees get 25 days of leave.",
		},
		{
			name: "numbered headings survive",
			text: "3. Sick Leave\nDetails follow.",
			want: "3. Sick Leave\nDetails follow.",
		},
		{
			name: "smart quotes become ascii",
			text: "“flexible working” and ‘core hours’",
			want: `"flexible working" and 'core hours'`,
		},
		{
			name: "apostrophe normalised",
			text: "the employee’s manager",
			want: "the employee's manager",
		},
		{
			name: "bullets become dashes",
			text: "• first item\n● second item",
			want: "- first item\n- second item",
		},
		{
			name: "result is trimmed",
			text: "\n\n  body  \n\n",
			want: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.text); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClean_PDFExtractionShape(t *testing.T) {
	// The combined shape a PDF extraction typically produces: a footer
	// on every page, hard paragraph breaks, smart punctuation.
	raw := "Annual Leave Policy\r\n\r\n\r\nEmployees   accrue leave monthly.\r\n" +
		"Page 1 of 2\r\n\r\n• Carry-over requires approval\r\nPage 2 of 2\r\n"

	want := "Annual Leave Policy\n\nEmployees accrue leave monthly.\n\n- Carry-over requires approval"

	if got := Clean(raw); got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestRemoveNoiseLines_KeepsBlankLines(t *testing.T) {
	// Blank lines are paragraph boundaries... but a bare-digit pattern
	// on an empty string must not match.
	got := removeNoiseLines("a\n\nb")
	if got != "a\n\nb" {
		t.Errorf("removeNoiseLines() = %q, want %q", got, "a\n\nb")
	}
}
