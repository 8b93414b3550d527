package metadata

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

func TestInferTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "capitalised short first line",
			content: "Annual Leave Policy\n\nEmployees are entitled to leave.",
			want:    "Annual Leave Policy",
		},
		{
			name:    "lowercase first line",
			content: "employees are entitled to leave.",
			want:    "Unknown",
		},
		{
			name:    "leading space disqualifies",
			content: " Annual Leave Policy\nmore",
			want:    "Unknown",
		},
		{
			name:    "digit start",
			content: "1. Introduction\nmore",
			want:    "Unknown",
		},
		{
			name:    "first line too long",
			content: strings.Repeat("A", 100) + "\nmore",
			want:    "Unknown",
		},
		{
			name:    "first line just under the limit",
			content: strings.Repeat("A", 99) + "\nmore",
			want:    strings.Repeat("A", 99),
		},
		{
			name:    "single line without newline",
			content: "Sick Pay",
			want:    "Sick Pay",
		},
		{
			name:    "empty first line",
			content: "\nBody text here.",
			want:    "Unknown",
		},
		{
			name:    "trailing whitespace trimmed from stored title",
			content: "Benefits Overview \nbody",
			want:    "Benefits Overview",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferTitle(tt.content); got != tt.want {
				t.Errorf("InferTitle(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestProcessor_Process(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	p := New(WithClock(func() time.Time { return fixed }))

	doc := &domain.Document{
		ID:  "doc-1",
		URI: "file:///corpus/policies/handbook.pdf",
	}
	chunks := []domain.Chunk{
		{ID: "c-1", DocumentID: "doc-1", Content: "Holiday Entitlement\n\nTwenty five days plus bank holidays.", Position: 0},
		{ID: "c-2", DocumentID: "doc-1", Content: "continued text with no heading at all", Position: 2},
	}

	got, err := p.Process(context.Background(), doc, chunks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d chunks, want 2", len(got))
	}

	first := got[0].Metadata
	if first.ChunkID != "c-1" {
		t.Errorf("ChunkID = %q, want %q", first.ChunkID, "c-1")
	}
	if first.SourceFile != "handbook.pdf" {
		t.Errorf("SourceFile = %q, want %q", first.SourceFile, "handbook.pdf")
	}
	if first.ChunkIndex != 0 {
		t.Errorf("ChunkIndex = %d, want 0", first.ChunkIndex)
	}
	if first.WordCount != 8 {
		t.Errorf("WordCount = %d, want 8", first.WordCount)
	}
	if !first.ProcessedAt.Equal(fixed) {
		t.Errorf("ProcessedAt = %v, want %v", first.ProcessedAt, fixed)
	}
	if first.InferredTitle != "Holiday Entitlement" {
		t.Errorf("InferredTitle = %q, want %q", first.InferredTitle, "Holiday Entitlement")
	}
	if want := len([]rune(got[0].Content)); first.CharCount != want {
		t.Errorf("CharCount = %d, want %d", first.CharCount, want)
	}

	second := got[1].Metadata
	if second.ChunkIndex != 2 {
		t.Errorf("ChunkIndex = %d, want 2 (position preserved through filtering)", second.ChunkIndex)
	}
	if second.InferredTitle != "Unknown" {
		t.Errorf("InferredTitle = %q, want %q", second.InferredTitle, "Unknown")
	}
}

func TestProcessor_Process_TimestampIsUTC(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	local := time.Date(2025, 3, 14, 10, 0, 0, 0, paris)
	p := New(WithClock(func() time.Time { return local }))

	got, err := p.Process(context.Background(), &domain.Document{URI: "file:///x.txt"}, []domain.Chunk{{ID: "c", Content: "text"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc := got[0].Metadata.ProcessedAt.Location(); loc != time.UTC {
		t.Errorf("ProcessedAt location = %v, want UTC", loc)
	}
}

func TestProcessor_Process_CharCountRunes(t *testing.T) {
	p := New()

	got, err := p.Process(context.Background(), &domain.Document{URI: "file:///x.txt"}, []domain.Chunk{{ID: "c", Content: "héllö wörld"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Metadata.CharCount != 11 {
		t.Errorf("CharCount = %d, want 11", got[0].Metadata.CharCount)
	}
}

func TestSourceFileName(t *testing.T) {
	tests := []struct {
		name string
		doc  *domain.Document
		want string
	}{
		{"file uri", &domain.Document{URI: "file:///corpus/a/b/policy.docx"}, "policy.docx"},
		{"uri with spaces encoded", &domain.Document{URI: "file:///corpus/leave%20policy.pdf"}, "leave policy.pdf"},
		{"unparseable uri falls back to title", &domain.Document{URI: "::bad::", Title: "notes"}, "notes"},
		{"nil document", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sourceFileName(tt.doc); got != tt.want {
				t.Errorf("sourceFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
