package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/segmentio/ksuid"

	"fable/pkg/domain"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingName        = errors.New("name, email and password are required")
)

// AuthProvider is the capability boundary for authentication. The local
// implementation below does no real verification; a real backend can be
// substituted without touching the generation pipeline.
type AuthProvider interface {
	SignUp(ctx context.Context, name, email, password string) (domain.Account, error)
	Login(ctx context.Context, email, password string) (domain.Account, error)
}

// LocalAuth accepts any non-empty credentials and mints a fresh free-tier
// account. It exists so the rest of the system has a stable auth seam.
type LocalAuth struct{}

func NewLocalAuth() *LocalAuth {
	return &LocalAuth{}
}

func (LocalAuth) SignUp(_ context.Context, name, email, password string) (domain.Account, error) {
	if name == "" || email == "" || password == "" {
		return domain.Account{}, ErrMissingName
	}
	return newFreeAccount(name, email), nil
}

func (LocalAuth) Login(_ context.Context, email, password string) (domain.Account, error) {
	if email == "" || password == "" {
		return domain.Account{}, ErrMissingCredentials
	}
	name, _, _ := strings.Cut(email, "@")
	return newFreeAccount(name, email), nil
}

func newFreeAccount(name, email string) domain.Account {
	limits := domain.PlanFree.Limits()
	id := ksuid.New()
	now := time.Now()
	return domain.Account{
		ID:               id.String(),
		Name:             name,
		Email:            email,
		Plan:             domain.PlanFree,
		StoriesGenerated: 0,
		DailyStoryLimit:  limits.DailyStories,
		WordLimit:        limits.StoryWords,
		SavedStoryLimit:  limits.SavedStories,
		AvatarSeed:       strings.ToLower(id.String()[:6]),
		LastReset:        now,
		CreatedAt:        now,
	}
}
