package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"estimate_agent/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{Size: 0}.Validate())
	assert.Error(t, Config{Size: 10, Overlap: -1}.Validate())
	assert.Error(t, Config{Size: 10, Overlap: 10}.Validate())
}

func TestChunk_EmptyContent(t *testing.T) {
	chunks, err := NewDefault().Chunk("   \n ", entities.DocumentTypeText)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestChunk_ShortTextIsSingleChunk(t *testing.T) {
	chunks, err := NewDefault().Chunk("  A small CRM for a dental clinic.  ", entities.DocumentTypeText)
	require.NoError(t, err)
	assert.Equal(t, []string{"A small CRM for a dental clinic."}, chunks)
}

func TestChunk_TextRespectsSizeAndOverlaps(t *testing.T) {
	c, err := New(Config{Size: 40, Overlap: 10})
	require.NoError(t, err)

	words := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		words = append(words, "word")
	}
	chunks, err := c.Chunk(strings.Join(words, " "), entities.DocumentTypeText)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for _, ch := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(ch), 40)
	}
	// the tail of one chunk is repeated at the head of the next
	assert.True(t, strings.HasPrefix(chunks[1], "word word"))
}

func TestChunk_TextPrefersParagraphBreaks(t *testing.T) {
	c, err := New(Config{Size: 30, Overlap: 0})
	require.NoError(t, err)

	chunks, err := c.Chunk("First paragraph here.\n\nSecond paragraph here.", entities.DocumentTypeText)
	require.NoError(t, err)
	assert.Equal(t, []string{"First paragraph here.", "Second paragraph here."}, chunks)
}

func TestChunk_HardSplitsUnbrokenText(t *testing.T) {
	c, err := New(Config{Size: 10, Overlap: 2})
	require.NoError(t, err)

	chunks, err := c.Chunk(strings.Repeat("あ", 25), entities.DocumentTypeText)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, 10, utf8.RuneCountInString(chunks[0]))
	assert.Equal(t, 9, utf8.RuneCountInString(chunks[2]))
}

func TestChunk_MarkdownSplitsOnHeadings(t *testing.T) {
	content := "# Overview\nA booking system.\n\n## Users\nClinic staff.\n\n```\n# not a heading\n```\n### Detail\nStill users."

	chunks, err := NewDefault().Chunk(content, entities.DocumentTypeMarkdown)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "# Overview\nA booking system.", chunks[0])
	assert.True(t, strings.HasPrefix(chunks[1], "## Users"))
	assert.Contains(t, chunks[1], "# not a heading")
	assert.Contains(t, chunks[1], "### Detail")
}

func TestChunk_HTMLConvertedToMarkdown(t *testing.T) {
	content := "<html><body><h1>Inventory</h1><p>Track <strong>stock</strong> levels.</p><h2>Reports</h2><p>Monthly.</p></body></html>"

	chunks, err := NewDefault().Chunk(content, entities.DocumentTypeHTML)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "# Inventory\n\nTrack **stock** levels.", chunks[0])
	assert.Equal(t, "## Reports\n\nMonthly.", chunks[1])
}

func TestChunk_JSONTopLevelEntries(t *testing.T) {
	chunker := NewDefault()

	chunks, err := chunker.Chunk(`{"name":"CRM","modules":["contacts","deals"],"budget":5000}`, entities.DocumentTypeJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`{"name":"CRM"}`,
		`{"modules":["contacts","deals"]}`,
		`{"budget":5000}`,
	}, chunks)

	chunks, err = chunker.Chunk(`[{"id":1}, {"id":2}]`, entities.DocumentTypeJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{`{"id":1}`, `{"id":2}`}, chunks)

	chunks, err = chunker.Chunk(`"just a string"`, entities.DocumentTypeJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{`"just a string"`}, chunks)
}

func TestChunk_InvalidJSON(t *testing.T) {
	_, err := NewDefault().Chunk(`{"name": `, entities.DocumentTypeJSON)
	assert.Error(t, err)

	_, err = NewDefault().Chunk(`{"a":1} trailing`, entities.DocumentTypeJSON)
	assert.Error(t, err)
}
