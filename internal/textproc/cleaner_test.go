package textproc

import (
	"context"
	"reflect"
	"testing"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		fillers []string
		input   string
		want    string
	}{
		{
			name:  "empty",
			input: "   \n\t ",
			want:  "",
		},
		{
			name:  "collapses whitespace",
			input: "  We   met\n\ntoday.  ",
			want:  "We met today.",
		},
		{
			name:  "drops bracket tags",
			input: "[music] Welcome back [laughter] everyone.",
			want:  "Welcome back everyone.",
		},
		{
			name:  "drops immediate repeats",
			input: "the the budget is is final",
			want:  "the budget is final",
		},
		{
			name:    "removes single and multi word fillers",
			fillers: config.DefaultFillerWords,
			input:   "Um, you know, we need to, like, ship it.",
			want:    "we need to, ship it.",
		},
		{
			name:    "empty filler list keeps words",
			fillers: []string{},
			input:   "um we ship",
			want:    "um we ship",
		},
		{
			name:  "fixes punctuation spacing",
			input: "Done .Next item ,Please.Thanks",
			want:  "Done. Next item, Please. Thanks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(nil, tt.fillers, logger.New("error"))
			if got := p.Clean(context.Background(), tt.input); got != tt.want {
				t.Errorf("Clean() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyPhrases(t *testing.T) {
	p := New(nil, nil, logger.New("error"))

	got := p.KeyPhrases("Quarterly roadmap review: roadmap ROADMAP should cover hiring and budget planning")
	want := []string{"Quarterly", "roadmap", "review:", "hiring", "budget", "planning"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeyPhrases() = %v, want %v", got, want)
	}
}

func TestKeyPhrasesCapped(t *testing.T) {
	p := New(nil, nil, logger.New("error"))

	text := ""
	for i := 0; i < 30; i++ {
		text += "keyword" + string(rune('a'+i%26)) + string(rune('a'+i/26)) + " "
	}
	if got := p.KeyPhrases(text); len(got) != maxKeyPhrases {
		t.Errorf("KeyPhrases() len = %d, want %d", len(got), maxKeyPhrases)
	}
}
