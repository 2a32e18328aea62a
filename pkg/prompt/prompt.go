// Package prompt renders user input and story parameters into the single
// instruction string sent to the generation model.
package prompt

import (
	"fmt"
	"strings"

	"fable/pkg/domain"
)

const preamble = "You are a creative storyteller. Create engaging, well-structured stories based on the following prompt: "

const formatHint = " Start with a title for the story on the first line, then a blank line, then the story content."

// Compose deterministically renders one instruction string from the raw
// prompt and parameters. It is a pure function: no clamping, no validation.
// The word count arrives pre-clamped to the account's ceiling by the caller.
func Compose(promptText string, params domain.Parameters) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a %s %s story about %s.",
		strings.ToLower(params.Tone), params.Genre, promptText)

	if len(params.Characters) > 0 {
		fmt.Fprintf(&b, " Include characters: %s.", strings.Join(params.Characters, ", "))
	}

	fmt.Fprintf(&b, " The story should be approximately %d words long.", params.Length)

	return preamble + b.String() + formatHint
}
