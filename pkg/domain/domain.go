package domain

import (
	"fmt"
	"time"
)

type PlanTier string

const (
	PlanFree    PlanTier = "free"
	PlanPro     PlanTier = "pro"
	PlanPremium PlanTier = "premium"
)

// PlanLimits are the ceilings derived from a plan tier. Paid tiers use large
// sentinel values rather than a separate "unlimited" flag, matching how the
// rest of the system treats them.
type PlanLimits struct {
	DailyStories int `json:"daily_stories"`
	StoryWords   int `json:"story_words"`
	SavedStories int `json:"saved_stories"`
}

var planLimits = map[PlanTier]PlanLimits{
	PlanFree:    {DailyStories: 5, StoryWords: 500, SavedStories: 10},
	PlanPro:     {DailyStories: 1000, StoryWords: 2000, SavedStories: 1000},
	PlanPremium: {DailyStories: 10000, StoryWords: 5000, SavedStories: 10000},
}

// Limits returns the ceiling table for the tier. An unknown tier is a
// programming error, not a recoverable condition.
func (t PlanTier) Limits() PlanLimits {
	l, ok := planLimits[t]
	if !ok {
		panic(fmt.Sprintf("domain: unknown plan tier %q", t))
	}
	return l
}

func (t PlanTier) Valid() bool {
	_, ok := planLimits[t]
	return ok
}

// Account is the single persisted user record. Ceilings are a pure function
// of Plan and are re-derived whenever the plan changes.
type Account struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Plan             PlanTier  `json:"plan"`
	StoriesGenerated int       `json:"stories_generated"`
	DailyStoryLimit  int       `json:"daily_story_limit"`
	WordLimit        int       `json:"word_limit"`
	SavedStoryLimit  int       `json:"saved_story_limit"`
	AvatarSeed       string    `json:"avatar_seed,omitempty"`
	LastReset        time.Time `json:"last_reset"`
	CreatedAt        time.Time `json:"created_at"`
}

// Parameters shape one generation request. Characters keeps the order the
// user entered; duplicates are allowed.
type Parameters struct {
	Genre      string   `json:"genre"`
	Tone       string   `json:"tone"`
	Length     int      `json:"length"`
	Characters []string `json:"characters"`
}

// Story is one completed generation. Immutable once created except for
// deletion from history.
type Story struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Prompt     string     `json:"prompt"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	Parameters Parameters `json:"parameters"`
}
