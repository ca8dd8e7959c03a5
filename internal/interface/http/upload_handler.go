package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adityawp/casaly/internal/apperr"
	"github.com/adityawp/casaly/internal/application"
	"github.com/adityawp/casaly/internal/interface/middleware"
	"github.com/adityawp/casaly/pkg/response"
)

// maxImageSize bounds multipart uploads at 10 MiB.
const maxImageSize = 10 << 20

type UploadHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewUploadHandler(svc *application.PropertyService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, Logger: logger}
}

// Upload POST /api/uploads — stores a listing image and returns its URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing image file", nil)
		return
	}
	if fh.Size > maxImageSize {
		response.Error[any](c, http.StatusBadRequest, "image too large", nil)
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error[any](c, http.StatusBadRequest, "file must be an image", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	uid := c.GetString(middleware.CtxUserIDKey)
	url, err := h.Svc.UploadImage(c.Request.Context(), uid, f, fh.Filename, contentType)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("image upload failed")
		}
		response.Error[any](c, apperr.Status(err), apperr.Message(err), nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url}, "image uploaded", nil)
}
