package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adityawp/casaly/internal/apperr"
	"github.com/adityawp/casaly/internal/application"
	"github.com/adityawp/casaly/internal/domain/entity"
	"github.com/adityawp/casaly/internal/interface/middleware"
	"github.com/adityawp/casaly/pkg/response"
	"github.com/adityawp/casaly/pkg/validation"
)

type PropertyHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

type createPropertyRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Type        string `json:"type" binding:"required,proptype"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	Sqmeters    int    `json:"sqmeters" binding:"omitempty,gt=0"`
	Beds        int    `json:"beds" binding:"omitempty,gt=0"`
	Featured    bool   `json:"featured"`
}

type updatePropertyRequest struct {
	Title       string `json:"title" binding:"omitempty,min=3"`
	Type        string `json:"type" binding:"omitempty,proptype"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	Price       int64  `json:"price" binding:"omitempty,gt=0"`
	Sqmeters    int    `json:"sqmeters" binding:"omitempty,gt=0"`
	Beds        int    `json:"beds" binding:"omitempty,gt=0"`
	Featured    *bool  `json:"featured"`
}

type inquiryRequest struct {
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

func propertyJSON(p *entity.Property) gin.H {
	return gin.H{
		"id":            p.ID,
		"title":         p.Title,
		"type":          p.Type,
		"description":   p.Description,
		"image_url":     p.ImageURL,
		"price":         p.Price,
		"sqmeters":      p.Sqmeters,
		"beds":          p.Beds,
		"featured":      p.Featured,
		"current_owner": p.CurrentOwner,
		"created_at":    p.CreatedAt,
		"updated_at":    p.UpdatedAt,
	}
}

func propertiesJSON(ps []*entity.Property) []gin.H {
	out := make([]gin.H, 0, len(ps))
	for _, p := range ps {
		out = append(out, propertyJSON(p))
	}
	return out
}

func (h *PropertyHandler) fail(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindStore && h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("property operation failed")
	}
	response.Error[any](c, apperr.Status(err), apperr.Message(err), nil)
}

// List GET /api/properties?type=
func (h *PropertyHandler) List(c *gin.Context) {
	ps, err := h.Svc.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, propertiesJSON(ps), "properties", gin.H{"count": len(ps)})
}

// Featured GET /api/properties/featured
func (h *PropertyHandler) Featured(c *gin.Context) {
	ps, err := h.Svc.Featured(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, propertiesJSON(ps), "featured properties", gin.H{"count": len(ps)})
}

// TypeCounts GET /api/properties/types
func (h *PropertyHandler) TypeCounts(c *gin.Context) {
	counts, err := h.Svc.TypeCounts(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, counts, "listing counts by type", nil)
}

// Search GET /api/properties/search?q=&size=
func (h *PropertyHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

// Get GET /api/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, propertyJSON(p), "property", nil)
}

// Create POST /api/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)

	p, err := h.Svc.Create(c.Request.Context(), uid, application.CreatePropertyInput{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Sqmeters:    req.Sqmeters,
		Beds:        req.Beds,
		Featured:    req.Featured,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, propertyJSON(p), "property created", nil)
}

// Update PUT /api/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	var req updatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)

	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), uid, application.UpdatePropertyInput{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Sqmeters:    req.Sqmeters,
		Beds:        req.Beds,
		Featured:    req.Featured,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, propertyJSON(p), "property updated", nil)
}

// Delete DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "property deleted", nil)
}

// Inquire POST /api/properties/:id/inquiry
func (h *PropertyHandler) Inquire(c *gin.Context) {
	var req inquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)

	if err := h.Svc.Inquire(c.Request.Context(), c.Param("id"), uid, req.Message); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusAccepted, gin.H{"queued": true}, "inquiry sent", nil)
}
