package copypasta

import (
	"context"
	"strconv"
	"strings"
)

// Credential is one slot of the API key pool used for model calls.
type Credential struct {
	Slot int
	Name string
	Key  string
}

// String returns the credential name without exposing the key.
func (c Credential) String() string {
	if c.Name != "" {
		return c.Name
	}
	return "slot-" + strconv.Itoa(c.Slot)
}

// NewCredentialPool builds an ordered pool from raw keys, skipping blanks.
// Slots are numbered in order starting at zero.
func NewCredentialPool(names, keys []string) []Credential {
	pool := make([]Credential, 0, len(keys))
	for i, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		cred := Credential{Slot: len(pool), Key: key}
		if i < len(names) {
			cred.Name = names[i]
		}
		pool = append(pool, cred)
	}
	return pool
}

// Completer sends a prompt to a hosted language model.
type Completer interface {
	// Complete returns the model's reply to prompt using the given credential.
	Complete(ctx context.Context, cred Credential, prompt string) (string, error)
}

// LLMResponse is the model reply for one chunk.
type LLMResponse struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Response assembly separators.
const (
	PageHeaderPrefix  = "\n\n# Page "
	ResponseSeparator = "\n\n---\n\n"
)

// AssembleResponses joins responses in order, labelling each with a
// 1-based "# Page N" header and separating consecutive entries with a
// horizontal rule.
func AssembleResponses(responses []LLMResponse) string {
	var sb strings.Builder
	for i, r := range responses {
		sb.WriteString(PageHeaderPrefix)
		sb.WriteString(strconv.Itoa(r.Index + 1))
		sb.WriteString("\n")
		sb.WriteString(r.Text)
		if i < len(responses)-1 {
			sb.WriteString(ResponseSeparator)
		}
	}
	return sb.String()
}
