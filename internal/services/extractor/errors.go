package extractor

import "errors"

var (
	// ErrHeaderRowNotFound means a section has no "Description" header
	// row; the report layout changed.
	ErrHeaderRowNotFound = errors.New("header row not found in section")

	// ErrUnknownLabel means a composite column label has no entry in the
	// canonical label registry. The registry is incomplete, not the data.
	ErrUnknownLabel = errors.New("unknown field label")

	// ErrLeadingContinuation means a section's first data row has no
	// description, so it has no owning record to merge into.
	ErrLeadingContinuation = errors.New("section starts with a continuation row")

	// ErrWeightInvariant means consolidation weights failed to sum to 1.
	ErrWeightInvariant = errors.New("consolidation weights do not sum to 1")
)
