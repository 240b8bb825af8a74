// Package vision implements copypasta.OCR with Google Cloud Vision document
// text detection.
package vision

import (
	"context"
	"fmt"
	"strings"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/fwojciec/copypasta"
	"google.golang.org/api/option"
)

var _ copypasta.OCR = (*Engine)(nil)

// AnnotateFunc sends a batch annotation request.
type AnnotateFunc func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error)

// Engine recognizes text using the Cloud Vision API.
// The underlying client is safe for concurrent use.
type Engine struct {
	client   *vision.ImageAnnotatorClient
	annotate AnnotateFunc
}

// NewEngine creates an Engine backed by a Cloud Vision client. Credentials
// come from opts or the environment (GOOGLE_APPLICATION_CREDENTIALS).
func NewEngine(ctx context.Context, opts ...option.ClientOption) (*Engine, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, copypasta.Errorf(copypasta.EUNAVAILABLE, "vision client: %v", err)
	}
	return &Engine{
		client: client,
		annotate: func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			return client.BatchAnnotateImages(ctx, req)
		},
	}, nil
}

// NewEngineWithAnnotator creates an Engine that sends requests through fn.
func NewEngineWithAnnotator(fn AnnotateFunc) *Engine {
	return &Engine{annotate: fn}
}

// Recognize returns the non-empty lines of the detected full text.
func (e *Engine) Recognize(ctx context.Context, image []byte) ([]string, error) {
	if len(image) == 0 {
		return nil, nil
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image: &visionpb.Image{Content: image},
			Features: []*visionpb.Feature{
				{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
			},
		}},
	}
	resp, err := e.annotate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision BatchAnnotateImages: %w", err)
	}
	if resp == nil || len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return nil, nil
	}

	r0 := resp.Responses[0]
	if r0.Error != nil && r0.Error.Message != "" {
		return nil, fmt.Errorf("vision annotate error: %s", r0.Error.Message)
	}
	if r0.FullTextAnnotation == nil {
		return nil, nil
	}

	var spans []string
	for line := range strings.Lines(r0.FullTextAnnotation.Text) {
		if s := strings.TrimSpace(line); s != "" {
			spans = append(spans, s)
		}
	}
	return spans, nil
}

// Close releases the underlying client.
func (e *Engine) Close() error {
	if e.client == nil {
		return nil
	}
	return e.client.Close()
}
