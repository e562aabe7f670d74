package handlers

import (
	"errors"
	"net/http"

	request "estimate_agent/internal/adapter/http/dto/request"
	response "estimate_agent/internal/adapter/http/dto/response"
	"estimate_agent/internal/usecase"
	"estimate_agent/pkg"

	"github.com/gin-gonic/gin"
)

type RAGHandler struct {
	usecase usecase.IRAGUseCase
}

func NewRAGHandler(uc usecase.IRAGUseCase) *RAGHandler {
	return &RAGHandler{usecase: uc}
}

// Ingest godoc
// @Summary      Ingest a reference document
// @Description  Chunks, embeds and stores a text, markdown, html or json document.
// @Tags         rag
// @Accept       json
// @Produce      json
// @Param        body  body      request.IngestDocumentRequest  true  "Document"
// @Success      201   {object}  response.Envelope{data=response.IngestResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /v1/rag/documents [post]
func (h *RAGHandler) Ingest(c *gin.Context) {
	var payload request.IngestDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	in := payload.ToInput()
	chunks, err := h.usecase.Ingest(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapRAGError(err))
		return
	}

	index := in.IndexName
	if index == "" {
		index = usecase.DefaultIndexName
	}
	c.JSON(http.StatusCreated, response.OKWithMessage(
		response.IngestResponse{IndexName: index, Chunks: chunks},
		"Document processed successfully",
	))
}

// Query godoc
// @Summary      Ask a question over ingested documents
// @Tags         rag
// @Accept       json
// @Produce      json
// @Param        body  body      request.QueryRequest  true  "Query"
// @Success      200   {object}  response.Envelope{data=response.QueryResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /v1/rag/query [post]
func (h *RAGHandler) Query(c *gin.Context) {
	var payload request.QueryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	in := payload.ToInput()
	answer, err := h.usecase.Query(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapRAGError(err))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.QueryResponse{Query: in.Query, Response: answer}))
}

func mapRAGError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContentRequired):
		return pkg.NewDomainErrorSimple("MISSING_CONTENT", "Document content is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQueryRequired):
		return pkg.NewDomainErrorSimple("MISSING_QUERY", "Query is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocumentType):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_TYPE", "type must be text, markdown, html or json", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRetrievalUnavailable):
		return pkg.NewDomainErrorSimple("RETRIEVAL_UNAVAILABLE", "Retrieval is not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
