package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/cache"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/frontend"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/ideas"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/monitoring"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/prediction"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/random"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/types"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// ChartQuiz names the Chinese chart quiz in metrics and logs
const ChartQuiz = "chinese"

// HealthChecker reports on an optional backing service
type HealthChecker interface {
	IsEnabled() bool
	HealthCheck(ctx context.Context) error
}

// Options wires a Handler. Zero values get working defaults except Renderer,
// which only the HTML routes need.
type Options struct {
	Random   random.Source
	Renderer *frontend.Renderer
	Metrics  *monitoring.Metrics
	Logger   *monitoring.Logger
	Redis    HealthChecker
}

// Handler serves the quizzes as HTML fragments and as JSON
type Handler struct {
	scorer   *prediction.SymptomScorer
	selector *ideas.Selector
	renderer *frontend.Renderer
	metrics  *monitoring.Metrics
	logger   *monitoring.Logger
	redis    HealthChecker
}

// New creates a Handler
func New(opts Options) *Handler {
	if opts.Random == nil {
		opts.Random = random.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = monitoring.NewMetrics()
	}
	if opts.Logger == nil {
		opts.Logger = monitoring.NewLogger(slog.LevelInfo)
	}
	return &Handler{
		scorer:   prediction.NewSymptomScorer(opts.Random),
		selector: ideas.NewSelector(opts.Random),
		renderer: opts.Renderer,
		metrics:  opts.Metrics,
		logger:   opts.Logger,
		redis:    opts.Redis,
	}
}

// unreadableInput is shown for a form or body the binder could not decode
const unreadableInput = "Your answers could not be read."

func bindError(err error) *errors.AppError {
	return errors.NewValidationError(unreadableInput, err.Error())
}

func (h *Handler) chart(c *gin.Context, req types.ChartRequest) (prediction.ChartResult, error) {
	start := time.Now()
	if err := prediction.ValidateChartInput(req.Age, req.Month); err != nil {
		return prediction.ChartResult{}, err
	}

	result := prediction.Chart(req.Age, req.Month)
	h.recordPrediction(ChartQuiz, result.Gender, prediction.Tally{}, time.Since(start))
	// the response cache replays this through RecordCachedChart
	c.Set(cache.MetaKey, string(result.Gender))
	return result, nil
}

// RecordCachedChart counts a chart answer served from the response cache,
// which never reaches the handler
func (h *Handler) RecordCachedChart(_ *gin.Context, gender string) {
	if gender == "" {
		return
	}
	h.recordPrediction(ChartQuiz, prediction.Gender(gender), prediction.Tally{}, 0)
}

func (h *Handler) heartbeat(req types.HeartbeatRequest) (prediction.SymptomResult, error) {
	start := time.Now()
	result, err := h.scorer.Score(req.Answers())
	if err != nil {
		h.recordFailure(prediction.HeartbeatQuiz, err)
		return result, err
	}

	h.recordPrediction(prediction.HeartbeatQuiz, result.Gender, result.Tally, time.Since(start))
	return result, nil
}

func (h *Handler) wivesTales(req types.WivesTalesRequest) (prediction.TalesResult, error) {
	start := time.Now()
	result, err := prediction.ScoreTales(req.Answers())
	if err != nil {
		h.recordFailure(prediction.WivesTalesQuiz, err)
		return result, err
	}

	h.recordPrediction(prediction.WivesTalesQuiz, result.Gender, result.Tally, time.Since(start))
	return result, nil
}

func (h *Handler) recordPrediction(quiz string, g prediction.Gender, tally prediction.Tally, d time.Duration) {
	h.metrics.RecordPrediction(quiz, string(g))
	h.logger.PredictionLogger(quiz, string(g), tally.GirlPoints, tally.TotalPoints, d)
}

func (h *Handler) recordFailure(quiz string, err error) {
	if errors.IsIncompleteInput(err) {
		h.metrics.RecordIncompleteInput(quiz)
	}
}

// respondJSON writes data, or hands err to the error middleware
func respondJSON(c *gin.Context, data interface{}, err error) {
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, data)
}

// respondFragment renders the named fragment, or the error fragment with the
// follow-up line matching the error
func (h *Handler) respondFragment(c *gin.Context, name string, data interface{}, err error) {
	if h.renderer == nil {
		_ = c.Error(errors.NewConfigurationError("fragment renderer not configured", nil))
		c.Abort()
		return
	}

	status := http.StatusOK
	if err != nil {
		appErr := errors.ToAppError(err)
		appErr.RequestID = c.GetString("request_id")
		errors.LogError(c, appErr)

		followUp := frontend.FollowUpInvalid
		if appErr.Category == errors.CategoryIncompleteInput {
			followUp = frontend.FollowUpIncomplete
		}
		name = frontend.FragmentError
		data = frontend.ErrorFragment{Message: appErr.UserMessage(), FollowUp: followUp}
		status = appErr.HTTPStatus
	}

	if renderErr := h.renderer.RenderFragment(c, status, name, data); renderErr != nil {
		_ = c.Error(errors.NewInternalError("failed to render fragment", renderErr))
		c.Abort()
	}
}
