package feed

import "fmt"

// FetchError indicates a feed could not be retrieved or parsed.
// Message is safe to show to the user.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not fetch or parse the feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Message returns the user-facing description of the failure
func (e *FetchError) Message() string {
	return "Could not fetch or parse the RSS feed. Please check the URL and try again."
}

// InvalidFeedError indicates a URL does not point to a usable feed,
// raised when registering or updating a subscription
type InvalidFeedError struct {
	URL    string
	Reason string
}

func (e *InvalidFeedError) Error() string {
	return fmt.Sprintf("invalid feed %s: %s", e.URL, e.Reason)
}

// Message returns the user-facing description of the failure
func (e *InvalidFeedError) Message() string {
	return "Invalid or unreachable RSS feed URL."
}
