package inference

import "context"

// Generator defines an interface for running a single story generation call.
// Implementations are stateless and reentrant; they make exactly one attempt
// per invocation, with no retry, backoff, or internal timeout. Retrying is
// the caller's decision.
type Generator interface {
	Generate(ctx context.Context, instruction string, targetWords int) (string, error)
}

// Fixed generation hyperparameters shared by every provider.
const (
	temperature = 0.7
	topK        = 40
	topP        = 0.95
)

const genericFailure = "Failed to generate story"

// MaxOutputTokens overallocates roughly four tokens per requested word, with
// a floor so short requests are not truncated.
func MaxOutputTokens(targetWords int) int {
	return max(targetWords*4, 1000)
}
