package copypasta

import (
	"net/url"
	"regexp"
	"strings"
)

// videoIDPatterns match the known video-hosting URL shapes, tried in order.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/(?:watch\?v=|embed/|v/|.+\?v=)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/(?:playlist\?list=|watch\?v=)([a-zA-Z0-9_-]{11})`),
}

// VideoID extracts the 11-character video identifier from a video URL.
// Falls back to the "v" query parameter when no pattern matches.
// Returns false if the URL is not a video URL.
func VideoID(rawURL string) (string, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil || !isVideoHost(u.Hostname()) {
		return "", false
	}
	if v := u.Query().Get("v"); v != "" {
		return v, true
	}
	return "", false
}

// isVideoHost reports whether host belongs to the video-hosting domain.
func isVideoHost(host string) bool {
	host = strings.ToLower(host)
	return host == "youtube.com" || strings.HasSuffix(host, ".youtube.com") ||
		host == "youtu.be"
}

// KindFromContentType classifies a fetched resource by its declared
// Content-Type header.
func KindFromContentType(contentType string) SourceKind {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "application/pdf"):
		return SourcePDF
	case strings.Contains(ct, "image"):
		return SourceImage
	default:
		return SourceWeb
	}
}

// KindFromUploadType classifies an upload by its declared type.
// Accepts bare extensions ("pdf", ".png") and MIME types ("image/jpeg").
func KindFromUploadType(declared string) (SourceKind, error) {
	t := strings.ToLower(strings.TrimSpace(declared))
	t = strings.TrimPrefix(t, ".")
	switch t {
	case "pdf", "application/pdf":
		return SourcePDF, nil
	case "jpg", "jpeg", "png", "image/jpeg", "image/jpg", "image/png":
		return SourceImage, nil
	}
	return SourceWeb, Errorf(EINVALID, "unsupported upload type %q", declared)
}
