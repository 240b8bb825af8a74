package copypasta

import (
	"strings"
)

// SourceKind identifies the extraction path for an input.
type SourceKind int

// Supported source kinds.
const (
	SourceWeb SourceKind = iota
	SourcePDF
	SourceImage
	SourceVideo
)

// String returns the lowercase name of the kind.
func (k SourceKind) String() string {
	switch k {
	case SourceWeb:
		return "web"
	case SourcePDF:
		return "pdf"
	case SourceImage:
		return "image"
	case SourceVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Upload is a user-supplied file tagged with its declared type.
// The declared type is trusted; content is never sniffed.
type Upload struct {
	Name string
	Type string // "pdf", "jpg", "jpeg", "png" or the equivalent MIME type
	Data []byte
}

// PageRange is a 1-based inclusive range of PDF pages.
type PageRange struct {
	Start int
	End   int
}

// Normalize returns the range with Start and End swapped when Start > End.
func (r PageRange) Normalize() PageRange {
	if r.Start > r.End {
		return PageRange{Start: r.End, End: r.Start}
	}
	return r
}

// Clamp normalizes the range and bounds it to [1, pageCount].
// Returns false if no page of the range exists in the document.
func (r PageRange) Clamp(pageCount int) (PageRange, bool) {
	r = r.Normalize()
	if pageCount <= 0 || r.End < 1 || r.Start > pageCount {
		return PageRange{}, false
	}
	if r.Start < 1 {
		r.Start = 1
	}
	if r.End > pageCount {
		r.End = pageCount
	}
	return r, true
}

// ExtractionRequest describes a single user action to extract text.
type ExtractionRequest struct {
	ID        string
	Kind      SourceKind
	URL       string
	Uploads   []Upload
	PageRange *PageRange // nil means all pages
}

// Validate returns an error if the request cannot be processed.
func (r *ExtractionRequest) Validate() error {
	switch r.Kind {
	case SourceWeb, SourceVideo:
		if strings.TrimSpace(r.URL) == "" {
			return Errorf(EINVALID, "Please enter a valid URL.")
		}
	case SourcePDF:
		if len(r.Uploads) == 0 && strings.TrimSpace(r.URL) == "" {
			return Errorf(EINVALID, "Please upload a PDF.")
		}
		if len(r.Uploads) > 1 {
			return Errorf(EINVALID, "only one PDF can be extracted at a time")
		}
	case SourceImage:
		if len(r.Uploads) == 0 && strings.TrimSpace(r.URL) == "" {
			return Errorf(EINVALID, "Please upload at least one image.")
		}
		for _, u := range r.Uploads {
			if kind, err := KindFromUploadType(u.Type); err != nil || kind != SourceImage {
				return Errorf(EINVALID, "unsupported image type %q for %s", u.Type, u.Name)
			}
		}
	default:
		return Errorf(EINVALID, "unknown source kind %d", int(r.Kind))
	}
	if r.PageRange != nil && (r.PageRange.Start < 1 || r.PageRange.End < 1) {
		return Errorf(EINVALID, "Please enter valid page numbers.")
	}
	return nil
}
