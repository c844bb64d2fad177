package storagemodels

import "time"

// StreamResult represents a single item in a stream with metadata
type StreamResult[T any] struct {
	Item  T          // The decoded item
	Key   string     // The item's primary key
	Error error      // Stream-terminating error, if any
	Meta  StreamMeta // Metadata about this item
}

// StreamMeta contains metadata about a streamed item
type StreamMeta struct {
	Index      int64     // Item index in stream (0-based)
	PageNumber int       // Scan page number (1-based)
	Timestamp  time.Time // When the item was retrieved
}

// StreamOptions configures streaming behavior.
// Streaming never retries a failed page; the remote executor owns retry policy.
type StreamOptions struct {
	BufferSize      int                  // Channel buffer size (default: 100)
	PageSize        int32                // Items per scan page (default: 100)
	ProgressHandler func(StreamProgress) // Optional progress callback
}

// StreamProgress tracks streaming progress
type StreamProgress struct {
	ItemsProcessed int64     // Total items processed
	PagesProcessed int       // Total pages processed
	LastCursor     string    // Cursor of the last completed page
	StartTime      time.Time // When streaming started
	CurrentRate    float64   // Items per second
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize: 100,
		PageSize:   100,
	}
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) StreamOption {
	return func(o *StreamOptions) {
		if size > 0 {
			o.BufferSize = size
		}
	}
}

// WithPageSize sets the number of items fetched per scan page
func WithPageSize(size int32) StreamOption {
	return func(o *StreamOptions) {
		if size > 0 {
			o.PageSize = size
		}
	}
}

// WithProgressHandler sets an optional progress callback invoked after each page
func WithProgressHandler(handler func(StreamProgress)) StreamOption {
	return func(o *StreamOptions) {
		o.ProgressHandler = handler
	}
}
