package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/morechaitanya606/ucia/internal/application"
	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/internal/interface/middleware"
	"github.com/morechaitanya606/ucia/pkg/response"
	"github.com/morechaitanya606/ucia/pkg/validation"
)

type UpdateHandler struct {
	Svc    *application.UpdateService
	Logger *logrus.Logger
}

func NewUpdateHandler(svc *application.UpdateService, logger *logrus.Logger) *UpdateHandler {
	return &UpdateHandler{Svc: svc, Logger: logger}
}

type createUpdateRequest struct {
	ProjectID string `json:"project_id" binding:"required,uuid"`
	Title     string `json:"title" binding:"required,max=200"`
	Content   string `json:"content" binding:"required"`
	MediaURL  string `json:"media_url" binding:"omitempty,url"`
	Published *bool  `json:"published"`
}

type editUpdateRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	MediaURL  string `json:"media_url" binding:"omitempty,url"`
	Published *bool  `json:"published"`
}

func updateView(u *entity.Update) gin.H {
	v := gin.H{
		"id":         u.ID,
		"project_id": u.ProjectID,
		"title":      u.Title,
		"content":    u.Content,
		"media_url":  u.MediaURL,
		"published":  u.Published,
		"posted_at":  u.PostedAt,
	}
	if u.PostedName != "" {
		v["posted_by"] = gin.H{"name": u.PostedName}
	}
	return v
}

// ListByProject GET /api/updates/project/:slug
func (h *UpdateHandler) ListByProject(c *gin.Context) {
	updates, err := h.Svc.ListByProjectSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "project not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update list failed")
		response.Error[any](c, http.StatusInternalServerError, "could not list updates", nil)
		return
	}
	out := make([]gin.H, 0, len(updates))
	for _, u := range updates {
		out = append(out, updateView(u))
	}
	response.Success(c, http.StatusOK, out, "updates", nil)
}

// Create POST /api/updates (admin, editor)
func (h *UpdateHandler) Create(c *gin.Context) {
	var req createUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.CreateUpdateInput{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Content:   req.Content,
		MediaURL:  req.MediaURL,
		Published: req.Published,
	})
	if err != nil {
		h.Logger.WithError(err).Error("update create failed")
		response.Error[any](c, http.StatusInternalServerError, "could not create update", nil)
		return
	}
	response.Success(c, http.StatusCreated, updateView(u), "update created", nil)
}

// Edit PUT /api/updates/:id (admin, editor)
func (h *UpdateHandler) Edit(c *gin.Context) {
	var req editUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.CreateUpdateInput{
		Title:     req.Title,
		Content:   req.Content,
		MediaURL:  req.MediaURL,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "update not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update edit failed")
		response.Error[any](c, http.StatusInternalServerError, "could not edit update", nil)
		return
	}
	response.Success(c, http.StatusOK, updateView(u), "update edited", nil)
}

// Delete DELETE /api/updates/:id (admin)
func (h *UpdateHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "update not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update delete failed")
		response.Error[any](c, http.StatusInternalServerError, "could not delete update", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "update deleted", nil)
}

// UploadMedia POST /api/updates/:id/media (admin, editor)
func (h *UpdateHandler) UploadMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing file", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadMedia(c.Request.Context(), c.Param("id"), file,
		header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "update not found", nil)
			return
		}
		h.Logger.WithError(err).Error("media upload failed")
		response.Error[any](c, http.StatusInternalServerError, "could not upload media", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"media_url": url}, "media uploaded", nil)
}
