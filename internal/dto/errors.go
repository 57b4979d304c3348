package dto

import "fmt"

// UnknownEntityError reports a lookup against an id or code that does not
// exist. Controllers map it to 404.
type UnknownEntityError struct {
	Entity string
	Id     string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Id)
}

// InvalidPriceError reports a rejected price edit. Controllers map it to 400.
type InvalidPriceError struct {
	Value float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %v: must be a non-negative finite number", e.Value)
}

// InvalidResolutionError reports an unknown roadmap resolution. Controllers
// map it to 400.
type InvalidResolutionError struct {
	Resolution string
}

func (e *InvalidResolutionError) Error() string {
	return fmt.Sprintf("unknown roadmap resolution %q", e.Resolution)
}

// InvalidBucketError reports a release assignment outside the bucket
// sequence of the requested resolution. Controllers map it to 400.
type InvalidBucketError struct {
	Release    string
	Resolution string
}

func (e *InvalidBucketError) Error() string {
	return fmt.Sprintf("release %q is not a valid %s bucket", e.Release, e.Resolution)
}

// EnrichmentUnavailableError reports that an AI-backed operation was invoked
// while no provider is configured. Controllers map it to 503.
type EnrichmentUnavailableError struct {
	Kind string
}

func (e *EnrichmentUnavailableError) Error() string {
	return fmt.Sprintf("enrichment %q unavailable: no AI provider configured", e.Kind)
}

// ConflictError reports a write that would violate a uniqueness rule, such as
// attaching a feature twice to the same pricing tier. Controllers map it to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
