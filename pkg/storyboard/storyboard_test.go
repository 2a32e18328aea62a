package storyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fable/pkg/storyboard"
)

const sample = `Mira walked in the crystal cavern. She had never seen anything like it.

Mira called for Tobias, and Tobias answered from somewhere deep inside the glittering dark. He sounded afraid.

They met at the frozen lake, where Mira finally understood what Tobias had found.`

func TestParagraphs(t *testing.T) {
	paras := storyboard.Paragraphs(sample)
	assert.Len(t, paras, 3)

	assert.Empty(t, storyboard.Paragraphs(""))
	assert.Len(t, storyboard.Paragraphs("one\n\n\n\ntwo"), 2)
}

func TestCharacters(t *testing.T) {
	chars := storyboard.Characters(sample)

	assert.Contains(t, chars, "Mira")
	assert.Contains(t, chars, "Tobias")
	// Pronouns and one-off capitalized words never qualify.
	assert.NotContains(t, chars, "She")
	assert.NotContains(t, chars, "He")
	assert.NotContains(t, chars, "They")
	assert.LessOrEqual(t, len(chars), 5)
}

func TestCharactersRequireRecurrence(t *testing.T) {
	chars := storyboard.Characters("Aldric waved once. Nobody waved back at aldric.")
	assert.NotContains(t, chars, "Aldric", "a single capitalized mention is not a character")
}

func TestSettings(t *testing.T) {
	settings := storyboard.Settings(sample)

	assert.Contains(t, settings, "crystal cavern")
	assert.Contains(t, settings, "frozen lake")
	assert.LessOrEqual(t, len(settings), 3)
}

func TestSettingsLengthBounds(t *testing.T) {
	// Too short and too long phrases are rejected.
	settings := storyboard.Settings("He hid in the bog. She slept in the extraordinarily long abandoned victorian manor house, dreaming.")
	assert.NotContains(t, settings, "bog")
	for _, s := range settings {
		assert.Greater(t, len(s), 3)
		assert.Less(t, len(s), 20)
	}
}

func TestBuild(t *testing.T) {
	board := storyboard.Build(sample)
	assert.NotEmpty(t, board.Paragraphs)
	assert.NotEmpty(t, board.Characters)
	assert.NotEmpty(t, board.Settings)
}
