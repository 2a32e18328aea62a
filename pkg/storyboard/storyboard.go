// Package storyboard derives a best-effort scene breakdown from a finished
// story: paragraphs, recurring character names, and mentioned locations.
// Everything here is heuristic by design; no NLP is attempted.
package storyboard

import (
	"regexp"
	"strings"
	"unicode"
)

type Board struct {
	Paragraphs []string `json:"paragraphs"`
	Characters []string `json:"characters"`
	Settings   []string `json:"settings"`
}

func Build(text string) Board {
	return Board{
		Paragraphs: Paragraphs(text),
		Characters: Characters(text),
		Settings:   Settings(text),
	}
}

// Paragraphs splits on blank lines and drops empty sections.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

var pronouns = map[string]struct{}{
	"he": {}, "she": {}, "they": {}, "him": {},
	"her": {}, "his": {}, "hers": {}, "their": {},
}

const maxCharacters = 5

// Characters counts capitalized words, excluding common pronouns, and keeps
// the ones that recur. First-appearance order is preserved.
func Characters(text string) []string {
	counts := make(map[string]int)
	var order []string

	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
			continue
		}
		if _, ok := pronouns[strings.ToLower(word)]; ok {
			continue
		}
		clean := stripNonLetters(word)
		if len(clean) < 2 {
			continue
		}
		if counts[clean] == 0 {
			order = append(order, clean)
		}
		counts[clean]++
	}

	var out []string
	for _, name := range order {
		if counts[name] > 1 {
			out = append(out, name)
			if len(out) == maxCharacters {
				break
			}
		}
	}
	return out
}

var locationPhrases = []string{
	"in the", "at the", "on the",
	"inside the", "outside the", "within the",
	"across the", "beyond the", "through the",
}

var settingRXs = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(locationPhrases))
	for i, phrase := range locationPhrases {
		out[i] = regexp.MustCompile(`(?i)` + phrase + ` ([\w\s]+?)[.,;:]`)
	}
	return out
}()

const maxSettings = 3

// Settings extracts short phrases following common location prepositions.
func Settings(text string) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, rx := range settingRXs {
		for _, m := range rx.FindAllStringSubmatch(text, -1) {
			setting := strings.TrimSpace(m[1])
			if len(setting) <= 3 || len(setting) >= 20 {
				continue
			}
			if _, ok := seen[setting]; ok {
				continue
			}
			seen[setting] = struct{}{}
			out = append(out, setting)
			if len(out) == maxSettings {
				return out
			}
		}
	}
	return out
}

func stripNonLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
