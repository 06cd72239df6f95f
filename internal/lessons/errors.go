package lessons

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContent means the request carried no usable text. It is the
	// only error GenerateLessonPack returns.
	ErrEmptyContent = errors.New("lesson request has no content")

	ErrMalformedJSON   = errors.New("malformed JSON in completion")
	ErrSchemaViolation = errors.New("lesson pack schema violation")

	ErrAuthFailure    = errors.New("backend authentication failure")
	ErrQuotaFailure   = errors.New("backend quota failure")
	ErrNetworkFailure = errors.New("backend network failure")
	ErrUnknownFailure = errors.New("backend failure")
)

// SchemaViolationError names the first field of a pack that failed
// validation.
type SchemaViolationError struct {
	Field string
	Err   error
}

func (e *SchemaViolationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid field %q", e.Field)
}

func (e *SchemaViolationError) Unwrap() error { return e.Err }

func (e *SchemaViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// FailureKind classifies a failed completion.
type FailureKind string

const (
	FailureAuth    FailureKind = "auth"
	FailureQuota   FailureKind = "quota"
	FailureNetwork FailureKind = "network"
	FailureUnknown FailureKind = "unknown"
)

// CompletionError is a classified backend failure.
type CompletionError struct {
	Kind FailureKind
	Err  error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

func (e *CompletionError) Is(target error) bool {
	switch e.Kind {
	case FailureAuth:
		return target == ErrAuthFailure
	case FailureQuota:
		return target == ErrQuotaFailure
	case FailureNetwork:
		return target == ErrNetworkFailure
	default:
		return target == ErrUnknownFailure
	}
}

// FallbackReason returns the short reason recorded on a fallback pack for
// a pipeline error.
func FallbackReason(err error) string {
	var ce *CompletionError
	switch {
	case errors.As(err, &ce):
		return string(ce.Kind)
	case errors.Is(err, ErrSchemaViolation):
		return "schema_violation"
	case errors.Is(err, ErrMalformedJSON):
		return "malformed_json"
	default:
		return string(FailureUnknown)
	}
}

// DescribeFallback says, in a teacher-facing clause, why a pack with the
// given FallbackReason was built offline.
func DescribeFallback(reason string) string {
	switch reason {
	case string(FailureAuth):
		return "the AI service credentials are missing or were rejected"
	case string(FailureQuota):
		return "the AI service quota was used up"
	case string(FailureNetwork):
		return "the AI service could not be reached"
	case "malformed_json":
		return "the AI reply was not a readable lesson pack"
	case "schema_violation":
		return "the AI reply was missing parts of the lesson pack"
	default:
		return "the AI service could not be used"
	}
}
