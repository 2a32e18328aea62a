// Package story holds the normalized generation result and the ordered,
// capacity-bounded collection of past results.
package story

import (
	"time"

	"github.com/segmentio/ksuid"

	"fable/pkg/domain"
)

// New builds an immutable Story from a normalized generation result. IDs are
// ksuids: timestamp-derived and unique within history.
func New(title, promptText, content string, params domain.Parameters) domain.Story {
	return domain.Story{
		ID:         ksuid.New().String(),
		Title:      title,
		Prompt:     promptText,
		Content:    content,
		CreatedAt:  time.Now(),
		Parameters: params,
	}
}
