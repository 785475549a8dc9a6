package client

import "time"

// EventType identifies the kind of event occurring during a generation run.
type EventType string

const (
	// EventRunStart fires when a generation run begins.
	EventRunStart EventType = "run_start"

	// EventRunComplete fires when a generation run finishes successfully.
	EventRunComplete EventType = "run_complete"

	// EventArticleStart fires before the chat completion call.
	EventArticleStart EventType = "article_start"

	// EventArticleComplete fires after the article text arrived.
	EventArticleComplete EventType = "article_complete"

	// EventImageResolved fires when an image task produced a record.
	EventImageResolved EventType = "image_resolved"

	// EventImageSkipped fires when an image task failed and was skipped.
	// Skipped tasks never fail the run.
	EventImageSkipped EventType = "image_skipped"

	// EventWarning reports a suspicious but non-fatal condition, such as a
	// model ID that does not look like an endpoint ID.
	EventWarning EventType = "warning"

	// EventError reports a run-fatal failure.
	EventError EventType = "error"
)

// Event is an observable occurrence during a generation run. Events are sent
// non-blocking: a full channel drops them rather than stalling the pipeline.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Message is a human-readable description.
	Message string

	// Index is the image ordinal for image events, -1 otherwise.
	Index int

	// Duration is the elapsed time for completed steps.
	Duration time.Duration

	// Err carries the failure for warning and error events.
	Err error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
