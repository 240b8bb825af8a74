package mock

import (
	"context"

	"github.com/fwojciec/copypasta"
)

var _ copypasta.HTMLExtractor = (*HTMLExtractor)(nil)

// HTMLExtractor is a mock implementation of copypasta.HTMLExtractor.
type HTMLExtractor struct {
	ExtractFn func(html []byte, contentType string) (string, error)
}

func (e *HTMLExtractor) Extract(html []byte, contentType string) (string, error) {
	return e.ExtractFn(html, contentType)
}

var _ copypasta.TranscriptService = (*TranscriptService)(nil)

// TranscriptService is a mock implementation of copypasta.TranscriptService.
type TranscriptService struct {
	TranscriptFn func(ctx context.Context, videoID string) ([]copypasta.Cue, error)
}

func (s *TranscriptService) Transcript(ctx context.Context, videoID string) ([]copypasta.Cue, error) {
	return s.TranscriptFn(ctx, videoID)
}

var _ copypasta.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of copypasta.TextExtractor.
type TextExtractor struct {
	ExtractFn func(ctx context.Context, req *copypasta.ExtractionRequest) (*copypasta.ExtractedDocument, error)
}

func (e *TextExtractor) Extract(ctx context.Context, req *copypasta.ExtractionRequest) (*copypasta.ExtractedDocument, error) {
	return e.ExtractFn(ctx, req)
}
