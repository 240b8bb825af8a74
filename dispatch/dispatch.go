// Package dispatch sends extracted text to a language model in bounded
// chunks, rotating through a pool of credentials when calls fail.
package dispatch

import (
	"context"
	"sync"

	"github.com/fwojciec/copypasta"
)

// PromptSeparator joins text, chunk and instruction.
const PromptSeparator = "\n\n"

// Dispatcher sends chunked text to a Completer. Chunks are sent strictly in
// order; chunk N+1 is never sent before chunk N's reply is recorded.
type Dispatcher struct {
	Completer   copypasta.Completer
	Credentials []copypasta.Credential

	// Limiter, if set, is waited on before each call, keyed by credential.
	Limiter copypasta.Limiter

	// ChunkSize defaults to copypasta.DefaultChunkSize.
	ChunkSize int

	// ChunkLimit caps the number of chunks sent. Zero means
	// copypasta.DefaultChunkLimit; negative means unlimited.
	ChunkLimit int
}

// Result holds the outcome of a dispatch. On credential exhaustion it holds
// the replies received before the failure.
type Result struct {
	Output    string
	Responses []copypasta.LLMResponse
	Cursor    int
	Dropped   int
}

// ProgressEvent reports progress during a dispatch.
type ProgressEvent struct {
	Type       ProgressType
	Chunk      int
	Completed  int
	Total      int
	Credential copypasta.Credential
	Error      error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressRotated
	ProgressFinished
)

// ProgressFunc is a callback for reporting dispatch progress.
type ProgressFunc func(event ProgressEvent)

// Plan returns the chunks that Dispatch would send for text and
// instruction, and how many chunks the limit drops.
func (d *Dispatcher) Plan(text, instruction string) (chunks []copypasta.Chunk, dropped int, err error) {
	size := d.ChunkSize
	if size == 0 {
		size = copypasta.DefaultChunkSize
	}
	limit := d.ChunkLimit
	if limit == 0 {
		limit = copypasta.DefaultChunkLimit
	}

	payload := text
	if instruction != "" {
		payload = text + PromptSeparator + instruction
	}

	all, err := copypasta.SplitText(payload, size)
	if err != nil {
		return nil, 0, err
	}
	chunks, dropped = copypasta.LimitChunks(all, limit)
	return chunks, dropped, nil
}

// Prompt builds the prompt sent for one chunk.
func Prompt(chunk, instruction string) string {
	if instruction == "" {
		return chunk
	}
	return chunk + PromptSeparator + instruction
}

// Dispatch chunks text plus instruction and sends each chunk starting with
// the credential at cursor. A failed call moves the cursor to the next
// credential (wrapping) and retries the same chunk. When every credential
// has failed for one chunk, Dispatch returns the partial Result together
// with an ELIMIT error. The returned Result.Cursor is the credential to
// start from next time.
func (d *Dispatcher) Dispatch(ctx context.Context, text, instruction string, cursor int, progress ProgressFunc) (*Result, error) {
	n := len(d.Credentials)
	if n == 0 {
		return nil, copypasta.Errorf(copypasta.EINVALID, "no API keys configured")
	}
	if d.Completer == nil {
		return nil, copypasta.Errorf(copypasta.EINVALID, "no model backend configured")
	}
	if cursor < 0 || cursor >= n {
		cursor = 0
	}

	chunks, dropped, err := d.Plan(text, instruction)
	if err != nil {
		return nil, err
	}

	result := &Result{Cursor: cursor, Dropped: dropped}
	notify := func(e ProgressEvent) {
		if progress != nil {
			e.Total = len(chunks)
			e.Completed = len(result.Responses)
			progress(e)
		}
	}
	notify(ProgressEvent{Type: ProgressStarted})

	for _, chunk := range chunks {
		prompt := Prompt(chunk.Text, instruction)

		for failures := 0; ; {
			cred := d.Credentials[result.Cursor]

			reply, err := d.complete(ctx, cred, prompt)
			if err == nil {
				result.Responses = append(result.Responses, copypasta.LLMResponse{Index: chunk.Index, Text: reply})
				notify(ProgressEvent{Type: ProgressCompleted, Chunk: chunk.Index, Credential: cred})
				break
			}
			if ctx.Err() != nil {
				result.Output = copypasta.AssembleResponses(result.Responses)
				return result, ctx.Err()
			}

			failures++
			result.Cursor = (result.Cursor + 1) % n
			notify(ProgressEvent{Type: ProgressRotated, Chunk: chunk.Index, Credential: cred, Error: err})
			if failures == n {
				result.Output = copypasta.AssembleResponses(result.Responses)
				return result, copypasta.Errorf(copypasta.ELIMIT, "limit reached")
			}
		}
	}

	result.Output = copypasta.AssembleResponses(result.Responses)
	notify(ProgressEvent{Type: ProgressFinished})
	return result, nil
}

func (d *Dispatcher) complete(ctx context.Context, cred copypasta.Credential, prompt string) (string, error) {
	if d.Limiter != nil {
		if err := d.Limiter.Wait(ctx, cred.String()); err != nil {
			return "", err
		}
	}
	return d.Completer.Complete(ctx, cred, prompt)
}

// SharedCursor carries the credential cursor across dispatches. Dispatches
// through the same SharedCursor are serialized.
type SharedCursor struct {
	mu  sync.Mutex
	pos int
}

// Position returns the current cursor.
func (c *SharedCursor) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// Dispatch runs d.Dispatch from the shared cursor and stores the cursor it
// returns, including after a failure.
func (c *SharedCursor) Dispatch(ctx context.Context, d *Dispatcher, text, instruction string, progress ProgressFunc) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, err := d.Dispatch(ctx, text, instruction, c.pos, progress)
	if result != nil {
		c.pos = result.Cursor
	}
	return result, err
}
