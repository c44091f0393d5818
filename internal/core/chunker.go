// ABOUTME: ChunkText splits extracted resume text into overlapping windows for embedding
// ABOUTME: Prefers cutting at sentence or line breaks past 70% of the window
package core

import (
	"errors"
	"fmt"
	"strings"
)

// breakThreshold is the fraction of the window a sentence break must lie
// past before it is preferred over the hard window boundary.
const breakThreshold = 0.7

// ErrChunkConfig indicates invalid chunk size or overlap parameters.
var ErrChunkConfig = errors.New("invalid chunking configuration")

// ChunkText splits text into overlapping chunks of at most size characters.
// Consecutive chunks share overlap characters so sentences spanning a
// boundary stay retrievable. Each chunk is trimmed of surrounding
// whitespace and chunks that end up empty are dropped.
func ChunkText(text string, size, overlap int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d must be positive", ErrChunkConfig, size)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: chunk overlap %d must not be negative", ErrChunkConfig, overlap)
	}
	if overlap >= size {
		return nil, fmt.Errorf("%w: chunk overlap %d must be smaller than chunk size %d", ErrChunkConfig, overlap, size)
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	length := len(runes)

	var chunks []string
	start := 0
	for start < length {
		end := start + size
		if end >= length {
			end = length
		} else if bp := lastBreak(runes[start:end]); float64(bp) > float64(size)*breakThreshold && bp+1 > overlap {
			// A break too close to the window start would stall the
			// scan, so it only wins when the window still advances.
			end = start + bp + 1
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == length {
			break
		}
		start = end - overlap
	}

	return chunks, nil
}

// lastBreak returns the index of the rightmost period or newline in the
// window, or -1 when the window contains neither.
func lastBreak(window []rune) int {
	for i := len(window) - 1; i >= 0; i-- {
		if window[i] == '.' || window[i] == '\n' {
			return i
		}
	}
	return -1
}
