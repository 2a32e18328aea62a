// Package pipeline wires the generation flow: quota check, prompt
// composition, the model call, normalization, and the bookkeeping that
// follows a success.
package pipeline

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"fable/pkg/account"
	"fable/pkg/domain"
	"fable/pkg/inference"
	"fable/pkg/prompt"
	"fable/pkg/story"
	"fable/pkg/utils"
)

// ErrQuotaExceeded is returned before any network call when the free-tier
// daily limit is spent.
var ErrQuotaExceeded = errors.New("daily story limit reached")

// Pipeline carries the collaborators explicitly so the flow is testable
// without an HTTP server or real model behind it.
type Pipeline struct {
	Ledger    *account.Ledger
	Generator inference.Generator
	History   *story.History
}

func New(ledger *account.Ledger, gen inference.Generator, history *story.History) *Pipeline {
	return &Pipeline{Ledger: ledger, Generator: gen, History: history}
}

// Generate runs one prompt through the full flow. Pre-flight failures
// (signed out, quota spent) short-circuit before the model is contacted.
// Generation failures propagate without touching history or the ledger.
func (p *Pipeline) Generate(ctx context.Context, promptText string, params domain.Parameters) (domain.Story, error) {
	acct, ok := p.Ledger.Current()
	if !ok {
		return domain.Story{}, account.ErrSignedOut
	}
	if !p.Ledger.CanGenerate() {
		return domain.Story{}, ErrQuotaExceeded
	}

	if params.Length > acct.WordLimit {
		params.Length = acct.WordLimit
	}

	instruction := prompt.Compose(promptText, params)
	if log.GetLevel() <= log.DebugLevel {
		if n, err := utils.NumTokens(instruction); err == nil {
			log.Debug("composed instruction", "tokens", n, "words", params.Length)
		}
	}

	raw, err := p.Generator.Generate(ctx, instruction, params.Length)
	if err != nil {
		return domain.Story{}, err
	}

	title, content := story.Normalize(raw)
	s := story.New(title, promptText, content, params)

	if err := p.Ledger.RecordGeneration(); err != nil {
		return domain.Story{}, err
	}
	if err := p.History.Append(s, acct.SavedStoryLimit); err != nil {
		return domain.Story{}, err
	}

	log.Info("story generated", "id", s.ID, "title", utils.LimitStr(s.Title, 60))
	return s, nil
}
