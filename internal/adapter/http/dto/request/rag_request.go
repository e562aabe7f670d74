package request

import (
	"strings"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase"
)

type IngestDocumentRequest struct {
	Content   string         `json:"content"`
	Type      string         `json:"type"`
	Metadata  map[string]any `json:"metadata"`
	IndexName string         `json:"index_name"`
}

func (r IngestDocumentRequest) ToInput() usecase.IngestInput {
	return usecase.IngestInput{
		Content:   r.Content,
		Type:      entities.DocumentType(strings.ToLower(strings.TrimSpace(r.Type))),
		Metadata:  r.Metadata,
		IndexName: strings.TrimSpace(r.IndexName),
	}
}

type QueryRequest struct {
	Query     string         `json:"query"`
	Filter    map[string]any `json:"filter"`
	IndexName string         `json:"index_name"`
}

func (r QueryRequest) ToInput() usecase.QueryInput {
	return usecase.QueryInput{
		Query:     strings.TrimSpace(r.Query),
		Filter:    r.Filter,
		IndexName: strings.TrimSpace(r.IndexName),
	}
}
