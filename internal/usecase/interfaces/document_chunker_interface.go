package interfaces

import "estimate_agent/internal/domain/entities"

//go:generate mockgen -source=document_chunker_interface.go -destination=mocks/document_chunker_interface_mock.go -package=mock_interfaces

// IDocumentChunker splits a document into chunk texts suitable for embedding.
type IDocumentChunker interface {
	Chunk(content string, docType entities.DocumentType) ([]string, error)
}
