package llm

import "fmt"

// GenerationError indicates the upstream text-generation call failed.
// Generation failures are fatal to the request: they are never retried and
// surface to the caller as a 500-class response.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
