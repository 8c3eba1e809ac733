package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/BerylCAtieno/map-analyzer/internal/analyzer"
	"github.com/BerylCAtieno/map-analyzer/internal/models"
	"github.com/gin-gonic/gin"
)

const homeMessage = "Map Analyzer API is Running!"

type PropertyAnalyzer interface {
	Analyze(ctx context.Context, address string) (*models.AnalysisResponse, error)
}

type Handler struct {
	analyzer PropertyAnalyzer
}

func NewHandler(analyzer PropertyAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

type AnalyzeRequest struct {
	Address string `json:"address" binding:"required"`
}

// NewRouter wires the public endpoints onto a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), RequestLoggingMiddleware())

	router.GET("/", h.Home)
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.POST("/analyze", h.Analyze)

	return router
}

func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, homeMessage)
}

// Analyze handles POST /analyze
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("WARN: [%s] Rejected analyze request: %v", RequestID(c), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No address provided"})
		return
	}

	resp, err := h.analyzer.Analyze(c.Request.Context(), req.Address)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, analyzer.ErrMissingAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No address provided"})
	case errors.Is(err, analyzer.ErrAddressNotFound):
		level := "ERROR"
		if errors.Is(err, models.ErrNoMatch) {
			level = "WARN"
		}
		log.Printf("%s: [%s] %v", level, RequestID(c), err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
	default:
		log.Printf("ERROR: [%s] Analysis failed: %v", RequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
