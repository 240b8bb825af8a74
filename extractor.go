package copypasta

import (
	"context"
	"time"
)

// NoMainBodyText is the message of the ENOCONTENT error returned when a web
// page has no recognizable content container.
const NoMainBodyText = "No main body text found."

// HTMLExtractor extracts the readable main text from an HTML page.
type HTMLExtractor interface {
	// Extract returns the page's main body text.
	// The contentType is used to detect the character encoding.
	// Returns ENOCONTENT if no content container is found.
	Extract(html []byte, contentType string) (string, error)
}

// Cue is a single timed caption line of a video transcript.
type Cue struct {
	Text     string
	Start    time.Duration
	Duration time.Duration
}

// TranscriptService fetches video transcripts.
type TranscriptService interface {
	// Transcript returns the caption cues of a video in timeline order.
	// Returns EUNAVAILABLE if captions are disabled or the video is private
	// or missing.
	Transcript(ctx context.Context, videoID string) ([]Cue, error)
}

// TextExtractor converts one classified input into an ExtractedDocument.
type TextExtractor interface {
	Extract(ctx context.Context, req *ExtractionRequest) (*ExtractedDocument, error)
}
