package routes

import (
	"estimate_agent/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequirements = "/requirements"
	PathQuestions    = "/questions"
	PathEstimates    = "/estimates"
	PathRAG          = "/rag"
)

func addRequirementRoutes(rg *gin.RouterGroup, h *handlers.RequirementHandler) {
	rg.POST(PathRequirements, h.Submit)
}

func addQuestionRoutes(rg *gin.RouterGroup, h *handlers.QuestionHandler) {
	questions := rg.Group(PathQuestions)
	{
		questions.GET("", h.List)
		questions.POST("/:question_id/answer", h.Answer)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", h.ListRecent)
		estimates.GET("/:session_id", h.GetBySession)
		estimates.GET("/:session_id/items", h.ListItems)
		estimates.POST("/:session_id/items", h.AddItems)
		estimates.PATCH("/:session_id/items/:item_id", h.SelectItem)
		estimates.POST("/:session_id/total", h.RecalculateTotal)
		estimates.PATCH("/:session_id/status", h.UpdateStatus)
		estimates.POST("/:session_id/finalize", h.Finalize)
	}
}

func addRAGRoutes(rg *gin.RouterGroup, h *handlers.RAGHandler) {
	rag := rg.Group(PathRAG)
	{
		rag.POST("/documents", h.Ingest)
		rag.POST("/query", h.Query)
	}
}
