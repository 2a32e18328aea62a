package story_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fable/pkg/story"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "title blank line body",
			raw:       "Title\n\nBody line one\nBody line two",
			wantTitle: "Title",
			wantBody:  "Body line one\nBody line two",
		},
		{
			name:      "single line",
			raw:       "just one line of text",
			wantTitle: story.DefaultTitle,
			wantBody:  "just one line of text",
		},
		{
			name:      "no blank separator",
			raw:       "The Crystal Cavern\nOnce upon a time...",
			wantTitle: "The Crystal Cavern",
			wantBody:  "Once upon a time...",
		},
		{
			name:      "padded title",
			raw:       "  The Last Door  \n\nIt creaked open.",
			wantTitle: "The Last Door",
			wantBody:  "It creaked open.",
		},
		{
			name:      "blank first line",
			raw:       "\nno title here",
			wantTitle: story.DefaultTitle,
			wantBody:  "\nno title here",
		},
		{
			name:      "title with nothing after",
			raw:       "Lonely Title\n",
			wantTitle: story.DefaultTitle,
			wantBody:  "Lonely Title\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := story.Normalize(tt.raw)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestNormalizeNeverEmptiesBody(t *testing.T) {
	inputs := []string{"x", "x\n", "\n\n", "a\nb", "  \ntext"}
	for _, in := range inputs {
		_, body := story.Normalize(in)
		assert.NotEmpty(t, body, "input %q must not normalize to an empty body", in)
	}
}
