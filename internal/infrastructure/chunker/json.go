package chunker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// chunkJSON emits one chunk per top-level entry: {"key": value} for objects,
// the element for arrays. Entries larger than Size are split as text.
func (c *Chunker) chunkJSON(content string) ([]string, error) {
	entries, err := topLevelEntries([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("invalid json document: %w", err)
	}

	var out []string
	for _, e := range entries {
		out = append(out, c.splitRecursive(e, textSeparators)...)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// topLevelEntries keeps the document's key order.
func topLevelEntries(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return []string{string(bytes.TrimSpace(data))}, nil
	}

	var entries []string
	for dec.More() {
		var key string
		if delim == '{' {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ = keyTok.(string)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		if delim == '{' {
			b, err := json.Marshal(map[string]json.RawMessage{key: raw})
			if err != nil {
				return nil, err
			}
			entries = append(entries, string(b))
		} else {
			entries = append(entries, string(raw))
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return entries, nil
}
