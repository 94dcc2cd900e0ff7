package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/ideas"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/prediction"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/types"
)

// Chart godoc
// @Summary Chinese gender chart prediction
// @Description Predicts from the mother's age (18-50) and the conception month (1-12).
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body types.ChartRequest true "Mother's age and conception month"
// @Success 200 {object} prediction.ChartResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/chinese [post]
func (h *Handler) Chart(c *gin.Context) {
	var req types.ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, nil, bindError(err))
		return
	}
	result, err := h.chart(c, req)
	respondJSON(c, result, err)
}

// Heartbeat godoc
// @Summary Heartbeat and symptoms quiz
// @Description Scores five symptom answers. Every question must be answered.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body types.HeartbeatRequest true "Quiz answers"
// @Success 200 {object} prediction.SymptomResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse "Unanswered questions"
// @Router /api/v1/heartbeat [post]
func (h *Handler) Heartbeat(c *gin.Context) {
	var req types.HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, nil, bindError(err))
		return
	}
	result, err := h.heartbeat(req)
	respondJSON(c, result, err)
}

// WivesTales godoc
// @Summary Old wives' tales quiz
// @Description Scores six folk-test answers. Every question must be answered.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body types.WivesTalesRequest true "Quiz answers"
// @Success 200 {object} prediction.TalesResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse "Unanswered questions"
// @Router /api/v1/wives-tales [post]
func (h *Handler) WivesTales(c *gin.Context) {
	var req types.WivesTalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, nil, bindError(err))
		return
	}
	result, err := h.wivesTales(req)
	respondJSON(c, result, err)
}

// RevealIdea godoc
// @Summary Random gender reveal idea
// @Tags ideas
// @Produce json
// @Success 200 {object} ideas.RevealIdea
// @Router /api/v1/reveal-idea [get]
func (h *Handler) RevealIdea(c *gin.Context) {
	c.JSON(http.StatusOK, h.selector.Next())
}

// Ideas godoc
// @Summary All gender reveal ideas
// @Tags ideas
// @Produce json
// @Success 200 {object} types.IdeasResponse
// @Router /api/v1/ideas [get]
func (h *Handler) Ideas(c *gin.Context) {
	catalog := ideas.Catalog()
	c.JSON(http.StatusOK, types.IdeasResponse{Count: len(catalog), Ideas: catalog})
}

// Quizzes godoc
// @Summary Accepted quiz answers
// @Description Lists every question of both quizzes with its valid answer tokens.
// @Tags quizzes
// @Produce json
// @Success 200 {object} types.QuizzesResponse
// @Router /api/v1/quizzes [get]
func (h *Handler) Quizzes(c *gin.Context) {
	c.JSON(http.StatusOK, types.QuizzesResponse{
		Heartbeat:  prediction.SymptomChoices(),
		WivesTales: prediction.TalesChoices(),
	})
}
