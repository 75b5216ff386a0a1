package transport

import (
	"strings"
	"unicode/utf8"
)

// ChunkText splits text into pieces of at most limit characters. Splits
// prefer the last newline within the window, then the last space, then a
// hard cut. Chunks that are empty after trimming are dropped.
func ChunkText(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}

	var chunks []string
	remaining := text
	for len(remaining) > 0 {
		if len(remaining) <= limit {
			if trimmed := strings.TrimSpace(remaining); trimmed != "" {
				chunks = append(chunks, remaining)
			}
			break
		}

		window := remaining[:limit]
		cut := strings.LastIndexByte(window, '\n')
		if cut <= 0 {
			cut = strings.LastIndexByte(window, ' ')
		}
		if cut <= 0 {
			// Hard cut: back up to a rune boundary so a multi-byte
			// character is never split across chunks.
			cut = limit
			for cut > 0 && !utf8.RuneStart(remaining[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
		}

		chunk := remaining[:cut]
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			chunks = append(chunks, chunk)
		}

		remaining = remaining[cut:]
		// Drop the separator the cut landed on.
		remaining = strings.TrimLeft(remaining, "\n ")
	}
	return chunks
}
