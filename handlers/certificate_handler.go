package handlers // Controller layer translates HTTP <-> service calls.

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harshu1705/NSSS-Certificate/core"
	"github.com/harshu1705/NSSS-Certificate/global"
	"github.com/harshu1705/NSSS-Certificate/models"
	"github.com/harshu1705/NSSS-Certificate/services"

	"github.com/gin-gonic/gin"
)

// DownloadPath is where signed links point; routes registers the same path.
const DownloadPath = "/api/v1/certificates/download"

// Headers sent with a PDF answer to POST /certificates. Both values are
// percent-encoded so non-ASCII names survive; the page decodes them.
const (
	HeaderFileName = "X-Certificate-File"
	HeaderNotice   = "X-Certificate-Notice" // JSON models.Notice, extended variant only
)

// CertificateHandler bundles dependencies needed by the certificate endpoints.
type CertificateHandler struct {
	svc             services.CertificateService
	downloadSecret  string        // signs download links
	downloadExpires time.Duration // link lifetime
}

// NewCertificateHandler constructs the handler with its dependencies.
func NewCertificateHandler(svc services.CertificateService, downloadSecret string, downloadExpires time.Duration) *CertificateHandler {
	return &CertificateHandler{svc: svc, downloadSecret: downloadSecret, downloadExpires: downloadExpires}
}

// Health handles GET /healthz.
func (h *CertificateHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Health())
}

// Events handles GET /events; the page builds its dropdown from it.
func (h *CertificateHandler) Events(c *gin.Context) {
	events := h.svc.Events()
	if events == nil {
		events = []string{} // render [] rather than null
	}
	c.JSON(http.StatusOK, models.EventsResponse{Events: events, RequireEvent: h.svc.RequireEvent()})
}

// Issue handles POST /certificates.
// JSON clients get a notice + signed download link; "Accept: application/pdf"
// clients get the document directly.
func (h *CertificateHandler) Issue(c *gin.Context) {
	var req models.CertificateRequest
	if err := c.ShouldBind(&req); err != nil { // JSON or form body
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	art, err := h.svc.Issue(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	if strings.Contains(c.GetHeader("Accept"), "application/pdf") {
		c.Header(HeaderFileName, url.PathEscape(art.FileName))
		if h.svc.RequireEvent() {
			if n, err := json.Marshal(noticeSuccess); err == nil {
				c.Header(HeaderNotice, url.PathEscape(string(n)))
			}
		}
		writeArtifact(c, art)
		return
	}

	tok, err := services.SignDownloadToken(h.downloadSecret, h.downloadExpires, art.DisplayName, art.Event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign download link"})
		return
	}

	resp := models.CertificateResponse{
		FileName:    art.FileName,
		DownloadURL: DownloadPath + "?token=" + url.QueryEscape(tok),
	}
	if h.svc.RequireEvent() { // success notice is part of the extended variant
		n := noticeSuccess
		resp.Notice = &n
	}
	c.JSON(http.StatusOK, resp)
}

// Download handles GET /certificates/download (behind the DownloadToken middleware).
func (h *CertificateHandler) Download(c *gin.Context) {
	name := c.GetString(global.CtxCertNameKey)
	event := c.GetString(global.CtxCertEventKey)

	art, err := h.svc.Download(c.Request.Context(), name, event)
	if err != nil {
		h.fail(c, err)
		return
	}
	writeArtifact(c, art)
}

// fail maps domain errors to status + notice.
func (h *CertificateHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrNoEvent):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error(), Notice: noticeNoEvent})
	case errors.Is(err, core.ErrNameNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error(), Notice: noticeNotFound})
	case errors.Is(err, core.ErrRenderFailure):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: core.ErrRenderFailure.Error(), Notice: noticeRenderFailed})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// writeArtifact streams the PDF as an attachment named after the submission.
func writeArtifact(c *gin.Context, art *models.Artifact) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": art.FileName})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", art.Data)
}
