// Package export renders saved stories as plain-text downloads.
package export

import (
	"fmt"
	"strings"
	"time"

	"fable/pkg/domain"
	"fable/pkg/utils"
)

// Filename names a single-story download from the slugified title and an
// ISO date, e.g. "the-crystal-cavern-2026-08-30.txt".
func Filename(title string, t time.Time) string {
	slug := utils.Slugify(title)
	if slug == "" {
		slug = "story"
	}
	return fmt.Sprintf("%s-%s.txt", slug, t.Format("2006-01-02"))
}

// AllFilename names a bulk export.
func AllFilename(t time.Time) string {
	return fmt.Sprintf("stories-export-%s.txt", t.Format("2006-01-02"))
}

// Render produces the plain-text body for one story.
func Render(s domain.Story) string {
	return s.Content
}

// RenderAll concatenates every saved story into one document, newest first,
// each headed by its title and creation date.
func RenderAll(stories []domain.Story) string {
	var b strings.Builder
	for i, s := range stories {
		if i > 0 {
			b.WriteString("\n\n----------------------------------------\n\n")
		}
		fmt.Fprintf(&b, "%s\n%s\n\n%s", s.Title, s.CreatedAt.Format("2006-01-02"), s.Content)
	}
	return b.String()
}
