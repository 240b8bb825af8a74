package copypasta

// Chunking defaults.
const (
	DefaultChunkSize  = 16000
	DefaultChunkLimit = 10
)

// Chunk is a bounded-size contiguous slice of text prepared for one model call.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// SplitText slices text into contiguous, non-overlapping chunks of exactly
// size characters; the final chunk may be shorter. No word or sentence
// boundaries are considered. Concatenating the chunk texts in order
// reproduces text exactly.
func SplitText(text string, size int) ([]Chunk, error) {
	if size <= 0 {
		return nil, Errorf(EINVALID, "chunk size must be positive, got %d", size)
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	chunks := make([]Chunk, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Text:  string(runes[start:end]),
		})
	}
	return chunks, nil
}

// LimitChunks keeps the first limit chunks and reports how many were dropped.
// A limit of zero or less keeps every chunk.
func LimitChunks(chunks []Chunk, limit int) (kept []Chunk, dropped int) {
	if limit <= 0 || len(chunks) <= limit {
		return chunks, 0
	}
	return chunks[:limit], len(chunks) - limit
}
