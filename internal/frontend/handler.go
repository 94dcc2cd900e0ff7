package frontend

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/security"
)

// NewPageHandler serves the site page. The CSP middleware normally supplies
// the nonce; without it one is generated here so the script still loads.
func NewPageHandler(r *Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		nonce := security.GetNonce(c)
		if nonce == "" {
			slog.Warn("CSP nonce not found in context, generating new one")
			var err error
			nonce, err = security.GenerateNonce()
			if err != nil {
				_ = c.Error(err)
				c.Abort()
				return
			}
		}

		if err := r.RenderIndex(c, nonce); err != nil {
			slog.Error("Failed to render index.html", "error", err)
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// StaticHandler serves the embedded assets mounted under /static
func StaticHandler() gin.HandlerFunc {
	fileServer := http.StripPrefix("/static", http.FileServer(http.FS(StaticFS())))

	return func(c *gin.Context) {
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
