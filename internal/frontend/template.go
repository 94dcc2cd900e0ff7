package frontend

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/prediction"
)

// Fragment template names
const (
	FragmentError      = "error"
	FragmentChart      = "chart"
	FragmentHeartbeat  = "heartbeat"
	FragmentWivesTales = "wives-tales"
	FragmentIdea       = "reveal-idea"
)

// Follow-up lines under an error fragment
const (
	FollowUpIncomplete = "Please complete all questions to get your prediction."
	FollowUpInvalid    = "Please check your inputs and try again."
)

// SiteDisclaimer appears in the hero and the footer of the page
const SiteDisclaimer = "These predictions are for entertainment only and are not medically or scientifically accurate."

// ErrorFragment is the data of the error fragment
type ErrorFragment struct {
	Message  string
	FollowUp string
}

// PageData is the data of the site page
type PageData struct {
	Nonce      string
	Disclaimer string
	MinAge     int
	MaxAge     int
	Months     []Month
	Heartbeat  []Question
	WivesTales []Question
}

// Renderer executes the embedded page and fragment templates
type Renderer struct {
	page      *template.Template
	fragments *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	page, err := template.ParseFS(assets, "templates/index.html")
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to parse page template")
	}
	fragments, err := template.ParseFS(assets, "templates/fragments.html")
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to parse fragment templates")
	}
	return &Renderer{page: page, fragments: fragments}, nil
}

// NewPageData fills in everything the page shows except the nonce
func NewPageData(nonce string) PageData {
	return PageData{
		Nonce:      nonce,
		Disclaimer: SiteDisclaimer,
		MinAge:     prediction.MinMotherAge,
		MaxAge:     prediction.MaxMotherAge,
		Months:     months(),
		Heartbeat:  questionsFor(prediction.SymptomChoices()),
		WivesTales: questionsFor(prediction.TalesChoices()),
	}
}

// RenderIndex renders the site page with the provided nonce
func (r *Renderer) RenderIndex(c *gin.Context, nonce string) error {
	var buf bytes.Buffer
	if err := r.page.ExecuteTemplate(&buf, "index.html", NewPageData(nonce)); err != nil {
		return apperrors.WrapError(err, "failed to execute template")
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	return nil
}

// RenderFragment renders one named fragment as the response
func (r *Renderer) RenderFragment(c *gin.Context, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return apperrors.WrapError(err, "failed to execute fragment %q", name)
	}

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
	return nil
}
