// Package extract turns URLs and uploads into plain text. It classifies
// each input, runs the matching per-kind handler and falls back to OCR for
// PDF pages without usable embedded text.
package extract

import (
	"context"
	"mime"
	"strings"

	"github.com/fwojciec/copypasta"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel OCR calls for an image batch.
const DefaultConcurrency = 2

var _ copypasta.TextExtractor = (*Service)(nil)

// Service extracts text from classified inputs.
type Service struct {
	Fetcher     copypasta.Fetcher
	HTML        copypasta.HTMLExtractor
	PDFs        copypasta.PDFOpener
	Rasterizer  copypasta.Rasterizer
	OCR         copypasta.OCR
	Transcripts copypasta.TranscriptService
	Concurrency int
}

// Source is a classified URL. Resource holds the fetched response for
// non-video sources so extraction does not fetch twice.
type Source struct {
	Kind     copypasta.SourceKind
	URL      string
	VideoID  string
	Resource *copypasta.Resource
}

// Classify determines how rawURL should be extracted. Video URLs are
// recognized without network access; anything else is fetched once and
// classified by its Content-Type.
func (s *Service) Classify(ctx context.Context, rawURL string) (*Source, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, copypasta.Errorf(copypasta.EINVALID, "Please enter a valid URL.")
	}

	if id, ok := copypasta.VideoID(rawURL); ok {
		return &Source{Kind: copypasta.SourceVideo, URL: rawURL, VideoID: id}, nil
	}

	res, err := s.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return &Source{
		Kind:     copypasta.KindFromContentType(res.ContentType),
		URL:      rawURL,
		Resource: res,
	}, nil
}

// Extract validates req and produces its document. A Web request is
// classified first, so a URL pointing at a PDF or image takes that path.
// Per-page and per-image failures are recorded as warnings.
func (s *Service) Extract(ctx context.Context, req *copypasta.ExtractionRequest) (*copypasta.ExtractedDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r := *req
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	doc := &copypasta.ExtractedDocument{Kind: r.Kind, Request: &r}

	text, err := s.extract(ctx, doc, &r)
	if err != nil {
		return nil, err
	}
	return doc.Freeze(text), nil
}

func (s *Service) extract(ctx context.Context, doc *copypasta.ExtractedDocument, req *copypasta.ExtractionRequest) (string, error) {
	switch req.Kind {
	case copypasta.SourceWeb:
		src, err := s.Classify(ctx, req.URL)
		if err != nil {
			return "", err
		}
		doc.Kind = src.Kind
		return s.extractSource(ctx, doc, req, src)

	case copypasta.SourceVideo:
		id, ok := copypasta.VideoID(req.URL)
		if !ok {
			return "", copypasta.Errorf(copypasta.EINVALID, "Please enter a valid URL.")
		}
		return s.extractVideo(ctx, id)

	case copypasta.SourcePDF:
		if len(req.Uploads) > 0 {
			return s.extractPDF(ctx, doc, req.Uploads[0].Data, req.PageRange)
		}
		res, err := s.fetch(ctx, req.URL)
		if err != nil {
			return "", err
		}
		return s.extractPDF(ctx, doc, res.Body, req.PageRange)

	case copypasta.SourceImage:
		uploads := req.Uploads
		if len(uploads) == 0 {
			res, err := s.fetch(ctx, req.URL)
			if err != nil {
				return "", err
			}
			uploads = []copypasta.Upload{resourceUpload(res)}
		}
		return s.extractImages(ctx, doc, uploads)
	}
	return "", copypasta.Errorf(copypasta.EINVALID, "unknown source kind %d", int(req.Kind))
}

func (s *Service) extractSource(ctx context.Context, doc *copypasta.ExtractedDocument, req *copypasta.ExtractionRequest, src *Source) (string, error) {
	switch src.Kind {
	case copypasta.SourceVideo:
		return s.extractVideo(ctx, src.VideoID)
	case copypasta.SourcePDF:
		return s.extractPDF(ctx, doc, src.Resource.Body, req.PageRange)
	case copypasta.SourceImage:
		return s.extractImages(ctx, doc, []copypasta.Upload{resourceUpload(src.Resource)})
	default:
		return s.extractWeb(src.Resource)
	}
}

func (s *Service) fetch(ctx context.Context, rawURL string) (*copypasta.Resource, error) {
	if s.Fetcher == nil {
		return nil, copypasta.Errorf(copypasta.EUNAVAILABLE, "no fetcher configured")
	}
	res, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if copypasta.ErrorCode(err) != copypasta.EINTERNAL {
			return nil, err
		}
		return nil, copypasta.Errorf(copypasta.EUNAVAILABLE, "failed to fetch %s: %v", rawURL, err)
	}
	return res, nil
}

// resourceUpload wraps a fetched image as an upload named after its URL.
func resourceUpload(res *copypasta.Resource) copypasta.Upload {
	typ, _, err := mime.ParseMediaType(res.ContentType)
	if err != nil {
		typ = res.ContentType
	}
	return copypasta.Upload{Name: res.URL, Type: typ, Data: res.Body}
}

func (s *Service) extractWeb(res *copypasta.Resource) (string, error) {
	if s.HTML == nil {
		return "", copypasta.Errorf(copypasta.EUNAVAILABLE, "no HTML extractor configured")
	}
	return s.HTML.Extract(res.Body, res.ContentType)
}

func (s *Service) extractVideo(ctx context.Context, videoID string) (string, error) {
	if s.Transcripts == nil {
		return "", copypasta.Errorf(copypasta.EUNAVAILABLE, "no transcript service configured")
	}
	cues, err := s.Transcripts.Transcript(ctx, videoID)
	if err != nil {
		return "", err
	}
	texts := make([]string, len(cues))
	for i, c := range cues {
		texts[i] = c.Text
	}
	return strings.Join(texts, " "), nil
}

// extractPDF concatenates the text of each page in range, each followed by
// a newline. Pages whose embedded text is too short are rasterized and
// OCR'd exactly once.
func (s *Service) extractPDF(ctx context.Context, doc *copypasta.ExtractedDocument, data []byte, pr *copypasta.PageRange) (string, error) {
	if s.PDFs == nil {
		return "", copypasta.Errorf(copypasta.EUNAVAILABLE, "no PDF reader configured")
	}
	pdf, err := s.PDFs.Open(data)
	if err != nil {
		return "", err
	}

	n := pdf.NumPages()
	if n == 0 {
		doc.Warnf("document has no pages")
		return "", nil
	}
	r := copypasta.PageRange{Start: 1, End: n}
	if pr != nil {
		var ok bool
		if r, ok = pr.Clamp(n); !ok {
			return "", copypasta.Errorf(copypasta.EINVALID, "Please enter valid page numbers.")
		}
	}

	var sb strings.Builder
	for page := r.Start; page <= r.End; page++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		unit := s.pageUnit(ctx, doc, pdf, data, page)
		sb.WriteString(unit.EmbeddedText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// pageUnit loads one page, substituting OCR text when the page has no
// usable embedded text. Failures leave the page's text empty.
func (s *Service) pageUnit(ctx context.Context, doc *copypasta.ExtractedDocument, pdf copypasta.PDF, data []byte, page int) copypasta.PageUnit {
	unit := copypasta.PageUnit{Index: page - 1}

	text, err := pdf.PageText(page)
	if err != nil {
		doc.Warnf("page %d: %s", page, errorText(err))
		text = ""
	}
	if !copypasta.NeedsOCR(text) {
		unit.EmbeddedText = text
		unit.HasEmbeddedText = true
		return unit
	}

	if s.Rasterizer == nil || s.OCR == nil {
		doc.Warnf("page %d: no embedded text and no OCR engine configured", page)
		unit.EmbeddedText = strings.TrimSpace(text)
		return unit
	}

	unit.OCR = true
	img, err := s.Rasterizer.Rasterize(ctx, data, page)
	if err != nil {
		doc.Warnf("page %d: ocr failed: %s", page, errorText(err))
		return unit
	}
	unit.RenderedImage = img

	spans, err := s.OCR.Recognize(ctx, img)
	if err != nil {
		doc.Warnf("page %d: ocr failed: %s", page, errorText(err))
		return unit
	}
	unit.EmbeddedText = strings.Join(spans, "\n")
	return unit
}

// extractImages OCRs uploads concurrently and joins their text in upload
// order, separated by blank lines. The batch fails only if no image could
// be read.
func (s *Service) extractImages(ctx context.Context, doc *copypasta.ExtractedDocument, uploads []copypasta.Upload) (string, error) {
	if s.OCR == nil {
		return "", copypasta.Errorf(copypasta.EUNAVAILABLE, "no OCR engine configured")
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	texts := make([]string, len(uploads))
	errs := make([]error, len(uploads))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, u := range uploads {
		g.Go(func() error {
			spans, err := s.OCR.Recognize(ctx, u.Data)
			if err != nil {
				errs[i] = err
				return nil
			}
			texts[i] = strings.Join(spans, " ")
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	var failed int
	var last error
	for i, err := range errs {
		if err == nil {
			continue
		}
		failed++
		last = err
		doc.Warnf("image %s: ocr failed: %s", uploads[i].Name, errorText(err))
	}
	if failed == len(uploads) {
		if len(uploads) == 1 && copypasta.ErrorCode(last) != copypasta.EINTERNAL {
			return "", last
		}
		return "", copypasta.Errorf(copypasta.EUNAVAILABLE, "text could not be extracted from any image: %s", errorText(last))
	}

	return strings.TrimSpace(strings.Join(texts, "\n\n")), nil
}

// errorText returns a user-facing description of err.
func errorText(err error) string {
	if copypasta.ErrorCode(err) == copypasta.EINTERNAL {
		return err.Error()
	}
	return copypasta.ErrorMessage(err)
}
