package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokens estimates the token count of a prompt for logging purposes.
func NumTokens(text string) (int, error) {
	tkm, err := tiktoken.EncodingForModel("gpt-4-0613")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
