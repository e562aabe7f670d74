// Package chunker splits ingested documents into embedding-sized pieces.
package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

// Config sizes are measured in characters.
type Config struct {
	Size    int
	Overlap int
}

func DefaultConfig() Config {
	return Config{Size: 512, Overlap: 50}
}

func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("Size must be positive, got %d", c.Size)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("Overlap must not be negative, got %d", c.Overlap)
	}
	if c.Overlap >= c.Size {
		return fmt.Errorf("Overlap (%d) must be less than Size (%d)", c.Overlap, c.Size)
	}
	return nil
}

var textSeparators = []string{"\n\n", "\n", " ", ""}

type Chunker struct {
	config    Config
	converter *md.Converter
}

var _ interfaces.IDocumentChunker = (*Chunker)(nil)

func New(cfg Config) (*Chunker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return &Chunker{config: cfg, converter: converter}, nil
}

func NewDefault() *Chunker {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}

// Chunk picks the strategy for docType. Unknown types are chunked as text.
func (c *Chunker) Chunk(content string, docType entities.DocumentType) ([]string, error) {
	if strings.TrimSpace(content) == "" {
		return []string{}, nil
	}

	switch docType {
	case entities.DocumentTypeMarkdown:
		return c.chunkMarkdown(content), nil
	case entities.DocumentTypeHTML:
		markdown, err := c.converter.ConvertString(content)
		if err != nil {
			return nil, fmt.Errorf("convert html: %w", err)
		}
		return c.chunkMarkdown(markdown), nil
	case entities.DocumentTypeJSON:
		return c.chunkJSON(content)
	default:
		return c.splitRecursive(content, textSeparators), nil
	}
}

// chunkMarkdown starts a new section at every level 1 or 2 heading outside
// code fences; headings stay in the chunk text.
func (c *Chunker) chunkMarkdown(content string) []string {
	var sections []string
	var current strings.Builder
	inCodeBlock := false

	flush := func() {
		if strings.TrimSpace(current.String()) != "" {
			sections = append(sections, current.String())
		}
		current.Reset()
	}

	for _, line := range strings.Split(content, "\n") {
		if isCodeFence(line) {
			inCodeBlock = !inCodeBlock
		}
		if !inCodeBlock && isSectionHeading(line) {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, c.splitRecursive(s, textSeparators)...)
	}
	return out
}

// splitRecursive splits on the first separator present in text, recursing
// with finer separators into pieces still larger than Size.
func (c *Chunker) splitRecursive(text string, separators []string) []string {
	if runeLen(text) <= c.config.Size {
		if t := strings.TrimSpace(text); t != "" {
			return []string{t}
		}
		return nil
	}

	sep, rest := separators[len(separators)-1], []string(nil)
	for i, s := range separators {
		if s == "" || strings.Contains(text, s) {
			sep, rest = s, separators[i+1:]
			break
		}
	}
	if sep == "" {
		return c.hardSplit(text)
	}

	var out, fitting []string
	for _, part := range strings.Split(text, sep) {
		if runeLen(part) <= c.config.Size {
			fitting = append(fitting, part)
			continue
		}
		out = append(out, c.merge(fitting, sep)...)
		fitting = nil
		if len(rest) == 0 {
			out = append(out, c.hardSplit(part)...)
		} else {
			out = append(out, c.splitRecursive(part, rest)...)
		}
	}
	return append(out, c.merge(fitting, sep)...)
}

// merge joins small splits into chunks of at most Size, carrying up to
// Overlap characters of trailing splits into the next chunk.
func (c *Chunker) merge(splits []string, sep string) []string {
	var out, window []string
	total := 0
	sepLen := runeLen(sep)

	joinedLen := func(n int) int {
		if len(window) == 0 {
			return n
		}
		return total + sepLen + n
	}

	for _, s := range splits {
		n := runeLen(s)
		if len(window) > 0 && joinedLen(n) > c.config.Size {
			if t := strings.TrimSpace(strings.Join(window, sep)); t != "" {
				out = append(out, t)
			}
			for len(window) > 0 && (total > c.config.Overlap || joinedLen(n) > c.config.Size) {
				total -= runeLen(window[0])
				if len(window) > 1 {
					total -= sepLen
				}
				window = window[1:]
			}
		}
		total = joinedLen(n)
		window = append(window, s)
	}
	if t := strings.TrimSpace(strings.Join(window, sep)); t != "" {
		out = append(out, t)
	}
	return out
}

func (c *Chunker) hardSplit(text string) []string {
	runes := []rune(text)
	step := c.config.Size - c.config.Overlap
	var out []string
	for start := 0; start < len(runes); start += step {
		end := start + c.config.Size
		if end > len(runes) {
			end = len(runes)
		}
		if t := strings.TrimSpace(string(runes[start:end])); t != "" {
			out = append(out, t)
		}
		if end == len(runes) {
			break
		}
	}
	return out
}

func isCodeFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

func isSectionHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "# ") || strings.HasPrefix(trimmed, "## ")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
