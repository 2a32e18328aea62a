package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fable/pkg/domain"
	"fable/pkg/prompt"
)

func TestComposeOrdering(t *testing.T) {
	params := domain.Parameters{
		Genre:      "Fantasy",
		Tone:       "Whimsical",
		Length:     500,
		Characters: []string{"Protagonist", "Antagonist", "Sidekick"},
	}

	got := prompt.Compose("a dragon who collects teacups", params)

	assert.Contains(t, got, "Write a whimsical Fantasy story about a dragon who collects teacups.")
	assert.Contains(t, got, "Include characters: Protagonist, Antagonist, Sidekick.")
	assert.Contains(t, got, "approximately 500 words")
	assert.Contains(t, got, "Start with a title for the story on the first line")

	// Tone comes before the prompt, characters before the word count.
	assert.Less(t, strings.Index(got, "whimsical"), strings.Index(got, "dragon"))
	assert.Less(t, strings.Index(got, "Protagonist"), strings.Index(got, "500"))
}

func TestComposeEmptyCharacters(t *testing.T) {
	params := domain.Parameters{Genre: "Mystery", Tone: "Dark", Length: 800}

	got := prompt.Compose("a locked room", params)

	assert.NotContains(t, got, "Include characters")
	assert.NotContains(t, got, ", .")
	assert.Contains(t, got, "Write a dark Mystery story about a locked room.")
	assert.Contains(t, got, "approximately 800 words")
}

func TestComposeDeterministic(t *testing.T) {
	params := domain.Parameters{Genre: "Sci-Fi", Tone: "Neutral", Length: 1200, Characters: []string{"Ada", "Ada"}}

	first := prompt.Compose("generation ships", params)
	second := prompt.Compose("generation ships", params)

	assert.Equal(t, first, second)
	// Duplicates survive in display order.
	assert.Contains(t, first, "Ada, Ada")
}

func TestComposeNoClamping(t *testing.T) {
	params := domain.Parameters{Genre: "Fantasy", Tone: "Neutral", Length: 999999}
	got := prompt.Compose("anything", params)
	assert.Contains(t, got, "999999")
}
