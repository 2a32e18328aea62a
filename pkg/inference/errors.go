package inference

// GenerationError is the single failure type surfaced by a Generator.
// Message is always human-readable and safe to show to the user.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newGenerationError(msg string, err error) *GenerationError {
	if msg == "" {
		msg = genericFailure
	}
	return &GenerationError{Message: msg, Err: err}
}

// ErrMalformedResponse reports a provider response that did not contain the
// expected candidate text.
func ErrMalformedResponse() *GenerationError {
	return &GenerationError{Message: "malformed response from model"}
}
