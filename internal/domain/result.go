package domain

// ResultSource tags where a search result set came from. Callers can tell a
// live provider response apart from the built-in fallback set instead of the
// two being silently conflated.
type ResultSource string

const (
	// SourceLive marks results returned by the external provider.
	SourceLive ResultSource = "live"

	// SourceFallback marks the static fallback set substituted after a
	// provider failure.
	SourceFallback ResultSource = "fallback"
)

// SearchResult is the tagged outcome of a single search, carrying the
// normalized items together with provenance metadata.
type SearchResult[T any] struct {
	// Items are the normalized results, in provider order
	Items []T `json:"items"`

	// Source tells whether Items came from the provider or the fallback set
	Source ResultSource `json:"source"`

	// Provider is the name of the provider that was queried
	Provider string `json:"provider"`

	// FailureReason is set when Source is fallback; it records why the
	// provider response was not used
	FailureReason string `json:"failure_reason,omitempty"`

	// Sequence is the per-session search sequence number used to discard
	// stale responses
	Sequence uint64 `json:"sequence"`

	// DurationMs is how long the search took, in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// IsFallback reports whether the result set is the static fallback data.
func (r *SearchResult[T]) IsFallback() bool {
	return r.Source == SourceFallback
}

// NewLiveResult builds a SearchResult for a successful provider response.
// A nil item slice becomes an empty one so callers always see a list.
func NewLiveResult[T any](provider string, items []T) *SearchResult[T] {
	if items == nil {
		items = []T{}
	}
	return &SearchResult[T]{
		Items:    items,
		Source:   SourceLive,
		Provider: provider,
	}
}

// NewFallbackResult builds a SearchResult for a fallback substitution.
func NewFallbackResult[T any](provider string, items []T, reason string) *SearchResult[T] {
	if items == nil {
		items = []T{}
	}
	return &SearchResult[T]{
		Items:         items,
		Source:        SourceFallback,
		Provider:      provider,
		FailureReason: reason,
	}
}
