package account_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fable/pkg/account"
	"fable/pkg/domain"
	"fable/pkg/utils"
)

func openLedger(t *testing.T) (*account.Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "account.json")
	l, err := account.OpenLedger(path)
	require.NoError(t, err)
	return l, path
}

func freeAccount(t *testing.T, generated int) domain.Account {
	t.Helper()
	acct, err := account.NewLocalAuth().Login(t.Context(), "maya@example.com", "hunter2")
	require.NoError(t, err)
	acct.StoriesGenerated = generated
	return acct
}

func TestLedgerSignedOut(t *testing.T) {
	l, _ := openLedger(t)

	_, ok := l.Current()
	assert.False(t, ok)
	assert.False(t, l.CanGenerate())
	assert.Zero(t, l.Remaining())
	assert.ErrorIs(t, l.RecordGeneration(), account.ErrSignedOut)

	_, err := l.ApplyPlan(domain.PlanPro)
	assert.ErrorIs(t, err, account.ErrSignedOut)
}

func TestLedgerFreeTierQuota(t *testing.T) {
	l, _ := openLedger(t)
	require.NoError(t, l.SignIn(freeAccount(t, 0)))

	// Free accounts get exactly dailyStoryLimit generations.
	for i := 0; i < 5; i++ {
		assert.True(t, l.CanGenerate(), "generation %d should be allowed", i+1)
		assert.Equal(t, 5-i, l.Remaining())
		require.NoError(t, l.RecordGeneration())
	}

	assert.False(t, l.CanGenerate())
	assert.Equal(t, 0, l.Remaining())

	// Paid tiers are never bounded by the counter.
	_, err := l.ApplyPlan(domain.PlanPro)
	require.NoError(t, err)
	assert.True(t, l.CanGenerate())
	assert.Equal(t, 999, l.Remaining())
}

func TestLedgerRecordGenerationPersistsImmediately(t *testing.T) {
	l, path := openLedger(t)
	require.NoError(t, l.SignIn(freeAccount(t, 0)))
	require.NoError(t, l.RecordGeneration())

	saved, err := utils.Load[domain.Account](path)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.StoriesGenerated)
}

func TestLedgerApplyPlanTable(t *testing.T) {
	tests := []struct {
		tier  domain.PlanTier
		daily int
		words int
		saved int
	}{
		{domain.PlanFree, 5, 500, 10},
		{domain.PlanPro, 1000, 2000, 1000},
		{domain.PlanPremium, 10000, 5000, 10000},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			l, _ := openLedger(t)
			require.NoError(t, l.SignIn(freeAccount(t, 3)))

			acct, err := l.ApplyPlan(tt.tier)
			require.NoError(t, err)
			assert.Equal(t, tt.daily, acct.DailyStoryLimit)
			assert.Equal(t, tt.words, acct.WordLimit)
			assert.Equal(t, tt.saved, acct.SavedStoryLimit)
			assert.Equal(t, 3, acct.StoriesGenerated, "plan change must not touch the counter")

			// Idempotent: applying the same tier again changes nothing.
			again, err := l.ApplyPlan(tt.tier)
			require.NoError(t, err)
			assert.Equal(t, acct, again)
		})
	}
}

func TestLedgerDailyReset(t *testing.T) {
	l, _ := openLedger(t)

	acct := freeAccount(t, 5)
	acct.LastReset = time.Now().AddDate(0, 0, -1)
	require.NoError(t, l.SignIn(acct))

	// The counter rolls over lazily once the UTC day changes.
	assert.True(t, l.CanGenerate())
	assert.Equal(t, 5, l.Remaining())

	current, ok := l.Current()
	require.True(t, ok)
	assert.Zero(t, current.StoriesGenerated)
}

func TestLedgerSignOutErasesDocument(t *testing.T) {
	l, path := openLedger(t)
	require.NoError(t, l.SignIn(freeAccount(t, 0)))
	require.True(t, utils.Exists(path))

	require.NoError(t, l.SignOut())
	assert.False(t, utils.Exists(path))

	reopened, err := account.OpenLedger(path)
	require.NoError(t, err)
	_, ok := reopened.Current()
	assert.False(t, ok)
}

func TestLedgerReload(t *testing.T) {
	l, path := openLedger(t)
	require.NoError(t, l.SignIn(freeAccount(t, 2)))

	reopened, err := account.OpenLedger(path)
	require.NoError(t, err)
	acct, ok := reopened.Current()
	require.True(t, ok)
	assert.Equal(t, 2, acct.StoriesGenerated)
	assert.Equal(t, domain.PlanFree, acct.Plan)
}

func TestLocalAuthValidation(t *testing.T) {
	auth := account.NewLocalAuth()

	_, err := auth.Login(t.Context(), "", "secret")
	assert.ErrorIs(t, err, account.ErrMissingCredentials)

	_, err = auth.SignUp(t.Context(), "Maya", "maya@example.com", "")
	assert.ErrorIs(t, err, account.ErrMissingName)

	acct, err := auth.Login(t.Context(), "maya@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "maya", acct.Name)
	assert.Equal(t, domain.PlanFree, acct.Plan)
	assert.NotEmpty(t, acct.ID)
	assert.NotEmpty(t, acct.AvatarSeed)
}
