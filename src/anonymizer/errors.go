package anonymizer

import "errors"

// Sentinel errors for the anonymizer's failure classes. Wrapped errors carry
// detail; match with errors.Is.
var (
	// ErrInvalidInput means the caller passed a malformed table or named a
	// column that doesn't exist. Detected eagerly, before any processing
	// begins.
	ErrInvalidInput = errors.New("invalid anonymization input")

	// ErrConfig means the tagger configuration is inconsistent
	// (labels to anonymize not a subset of the label list).
	ErrConfig = errors.New("invalid tagger configuration")

	// ErrTagger means the external tagger call failed or returned output
	// that cannot be aligned with the sentence. Never retried; aborts the
	// whole anonymize call.
	ErrTagger = errors.New("tagger invocation failed")

	// ErrMapping means a reversal was attempted with a missing or
	// malformed mapping.
	ErrMapping = errors.New("malformed anonymization mapping")
)
