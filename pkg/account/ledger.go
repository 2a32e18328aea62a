// Package account owns the persisted user record: who is signed in, what
// plan they are on, and how much of their quota is spent.
package account

import (
	"errors"
	"os"
	"sync"
	"time"

	"fable/pkg/domain"
	"fable/pkg/utils"
)

// ErrSignedOut is returned by ledger operations that require an account.
var ErrSignedOut = errors.New("no account signed in")

// Remaining reports this sentinel for tiers with no practical daily ceiling.
const unlimitedRemaining = 999

// Ledger tracks the active account and its generation quota. The record is
// persisted as a single JSON document; an absent document means signed out.
// Quota-affecting mutations are committed before the caller proceeds.
type Ledger struct {
	mu   sync.Mutex
	acct *domain.Account
	path string
}

// OpenLedger loads the account document at path. A missing file means no
// one is signed in.
func OpenLedger(path string) (*Ledger, error) {
	l := &Ledger{path: path}
	acct, err := utils.Load[*domain.Account](path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return nil, err
	}
	l.acct = acct
	return l, nil
}

// Current returns the signed-in account, if any.
func (l *Ledger) Current() (domain.Account, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.acct == nil {
		return domain.Account{}, false
	}
	l.maybeReset(time.Now())
	return *l.acct, true
}

// SignIn replaces the active account and persists it.
func (l *Ledger) SignIn(a domain.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.acct = &a
	return utils.Save(l.path, l.acct)
}

// SignOut erases the account document. Local erasure only.
func (l *Ledger) SignOut() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.acct = nil
	return utils.Remove(l.path)
}

// CanGenerate reports whether the active account may start a generation.
// Paid tiers always may; the free tier is bounded by its daily limit.
func (l *Ledger) CanGenerate() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.acct == nil {
		return false
	}
	l.maybeReset(time.Now())
	if l.acct.Plan != domain.PlanFree {
		return true
	}
	return l.acct.StoriesGenerated < l.acct.DailyStoryLimit
}

// Remaining reports how many generations are left today.
func (l *Ledger) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.acct == nil {
		return 0
	}
	l.maybeReset(time.Now())
	if l.acct.Plan != domain.PlanFree {
		return unlimitedRemaining
	}
	return max(0, l.acct.DailyStoryLimit-l.acct.StoriesGenerated)
}

// RecordGeneration increments the daily counter and commits the record
// before returning.
func (l *Ledger) RecordGeneration() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.acct == nil {
		return ErrSignedOut
	}
	l.maybeReset(time.Now())
	l.acct.StoriesGenerated++
	return utils.Save(l.path, l.acct)
}

// ApplyPlan sets the tier and re-derives the three ceilings from the fixed
// table. An unknown tier panics; callers validate user input first.
func (l *Ledger) ApplyPlan(tier domain.PlanTier) (domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.acct == nil {
		return domain.Account{}, ErrSignedOut
	}
	limits := tier.Limits()
	l.acct.Plan = tier
	l.acct.DailyStoryLimit = limits.DailyStories
	l.acct.WordLimit = limits.StoryWords
	l.acct.SavedStoryLimit = limits.SavedStories
	if err := utils.Save(l.path, l.acct); err != nil {
		return domain.Account{}, err
	}
	return *l.acct, nil
}

// Save persists the current record, for use at shutdown.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.acct == nil {
		return nil
	}
	return utils.Save(l.path, l.acct)
}

// maybeReset rolls the daily counter over when the last reset happened on an
// earlier UTC calendar day. Caller holds the lock.
func (l *Ledger) maybeReset(now time.Time) {
	y1, m1, d1 := l.acct.LastReset.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return
	}
	l.acct.StoriesGenerated = 0
	l.acct.LastReset = now
}
