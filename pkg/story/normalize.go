package story

import "strings"

// DefaultTitle is used when no title can be extracted from the model output.
const DefaultTitle = "Untitled Story"

// Normalize splits raw model output into a title and body using a first-line
// heuristic: when the model followed the requested "title, blank line, body"
// format, the trimmed first line becomes the title and the rest the body.
// Anything else degrades to the default title with the input passed through
// unchanged. It never fails, and a non-empty input never yields an empty body.
func Normalize(raw string) (title, body string) {
	lines := strings.Split(raw, "\n")
	if len(lines) > 1 && strings.TrimSpace(lines[0]) != "" {
		rest := strings.TrimSpace(strings.Join(lines[1:], "\n"))
		if rest != "" {
			return strings.TrimSpace(lines[0]), rest
		}
	}
	return DefaultTitle, raw
}
