package llm

import "fmt"

// SummarizationError indicates a summary request failed; surfaced to the
// requesting UI element, never silently substituted with content
type SummarizationError struct {
	Err error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("could not summarize the article: %v", e.Err)
}

func (e *SummarizationError) Unwrap() error { return e.Err }

// Message returns the user-facing description of the failure
func (e *SummarizationError) Message() string {
	return "Could not summarize the article at this time."
}

// ClassificationError indicates a classification request failed; absorbed
// by the enrichment orchestrator and replaced with a fallback result
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("could not classify the article: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }
