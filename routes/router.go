package routes // Router setup layer.

import (
	"net/http"
	"time"

	"github.com/harshu1705/NSSS-Certificate/frontend"
	"github.com/harshu1705/NSSS-Certificate/handlers"
	"github.com/harshu1705/NSSS-Certificate/middlewares"
	"github.com/harshu1705/NSSS-Certificate/services"

	"github.com/gin-gonic/gin"
)

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, svc services.CertificateService, downloadSecret string, downloadExp time.Duration) {
	r.Use(middlewares.RequestLogger(), middlewares.Recovery()) // access log + panic recovery

	h := handlers.NewCertificateHandler(svc, downloadSecret, downloadExp)

	// The form page and a health probe.
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", frontend.IndexHTML)
	})
	r.GET("/healthz", h.Health)

	// Group API under /api/v1 for versioning.
	api := r.Group("/api/v1")
	api.GET("/events", h.Events)
	api.POST("/certificates", h.Issue)

	// Download links carry a signed token (same path as handlers.DownloadPath).
	api.GET("/certificates/download", middlewares.DownloadToken(downloadSecret), h.Download)
}
