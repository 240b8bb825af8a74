package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/copypasta"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ copypasta.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using the local Gemini tokenizer, so chunk plans
// can be sized without network calls or credentials.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// TokenizerModel maps a configured model name to one the local tokenizer
// knows. Provider prefixes ("google/") and variant suffixes (":free") are
// stripped. Non-Gemini models are approximated with DefaultModel.
func TokenizerModel(model string) string {
	name := strings.ToLower(strings.TrimSpace(model))
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, ":"); i >= 0 {
		name = name[:i]
	}
	if !strings.HasPrefix(name, "gemini-") {
		return DefaultModel
	}
	return name
}

// NewTokenCounter creates a TokenCounter for the configured model. A Gemini
// model the tokenizer does not support falls back to DefaultModel.
// Returns EUNAVAILABLE if no tokenizer model can be loaded.
func NewTokenCounter(model string) (*TokenCounter, error) {
	name := TokenizerModel(model)
	tok, err := tokenizer.NewLocalTokenizer(name)
	if err != nil && name != DefaultModel {
		name = DefaultModel
		tok, err = tokenizer.NewLocalTokenizer(name)
	}
	if err != nil {
		return nil, copypasta.Errorf(copypasta.EUNAVAILABLE, "tokenizer for %s: %v", name, err)
	}
	return &TokenCounter{model: name, tok: tok}, nil
}

// Model returns the tokenizer model actually in use.
func (tc *TokenCounter) Model() string { return tc.model }

// CountTokens counts the tokens of text sent as a single user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, copypasta.Errorf(copypasta.EINTERNAL, "count tokens: %v", err)
	}

	return int(result.TotalTokens), nil
}
