// Package youtube implements copypasta.TranscriptService using the
// kkdai/youtube client.
package youtube

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/copypasta"
	"github.com/kkdai/youtube/v2"
)

// DefaultLanguage is the caption track requested when none is configured.
const DefaultLanguage = "en"

var _ copypasta.TranscriptService = (*TranscriptService)(nil)

// Client is the subset of *youtube.Client used to fetch transcripts.
type Client interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error)
}

// TranscriptService fetches caption transcripts for videos.
type TranscriptService struct {
	client   Client
	language string
}

// Option configures a TranscriptService.
type Option func(*TranscriptService)

// WithLanguage sets the caption language code.
func WithLanguage(lang string) Option {
	return func(s *TranscriptService) {
		s.language = lang
	}
}

// WithClient replaces the underlying video client.
func WithClient(c Client) Option {
	return func(s *TranscriptService) {
		s.client = c
	}
}

// NewTranscriptService creates a TranscriptService using httpClient for
// requests. A nil httpClient uses http.DefaultClient.
func NewTranscriptService(httpClient *http.Client, opts ...Option) *TranscriptService {
	s := &TranscriptService{
		client:   &youtube.Client{HTTPClient: httpClient},
		language: DefaultLanguage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transcript returns the video's caption cues in timeline order.
func (s *TranscriptService) Transcript(ctx context.Context, videoID string) ([]copypasta.Cue, error) {
	video, err := s.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, unavailable(videoID, err)
	}

	segments, err := s.client.GetTranscriptCtx(ctx, video, s.language)
	if err != nil {
		return nil, unavailable(videoID, err)
	}

	cues := make([]copypasta.Cue, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		cues = append(cues, copypasta.Cue{
			Text:     text,
			Start:    time.Duration(seg.StartMs) * time.Millisecond,
			Duration: time.Duration(seg.Duration) * time.Millisecond,
		})
	}
	return cues, nil
}

// unavailable maps client failures to EUNAVAILABLE, keeping context errors
// intact so cancellation is not reported as a missing transcript.
func unavailable(videoID string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	switch {
	case errors.Is(err, youtube.ErrTranscriptDisabled):
		return copypasta.Errorf(copypasta.EUNAVAILABLE, "transcripts are disabled for video %s", videoID)
	case errors.Is(err, youtube.ErrVideoPrivate), errors.Is(err, youtube.ErrLoginRequired):
		return copypasta.Errorf(copypasta.EUNAVAILABLE, "video %s is private or restricted", videoID)
	}
	return copypasta.Errorf(copypasta.EUNAVAILABLE, "transcript for video %s is unavailable: %v", videoID, err)
}
