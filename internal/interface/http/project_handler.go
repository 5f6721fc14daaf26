package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/morechaitanya606/ucia/internal/application"
	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/internal/interface/middleware"
	"github.com/morechaitanya606/ucia/pkg/response"
	"github.com/morechaitanya606/ucia/pkg/validation"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

// editProjectRequest carries the mutable fields. The slug is not editable:
// updates address the project by path param alone.
type editProjectRequest struct {
	Title            string               `json:"title" binding:"required,max=200"`
	Subtitle         string               `json:"subtitle"`
	ShortDescription string               `json:"short_description"`
	Description      string               `json:"description"`
	Icon             string               `json:"icon"`
	Gradient         string               `json:"gradient"`
	Status           string               `json:"status" binding:"omitempty,projstatus"`
	StartDate        *time.Time           `json:"start_date"`
	EndDate          *time.Time           `json:"end_date"`
	Stats            []entity.ProjectStat `json:"stats"`
	Features         []string             `json:"features"`
}

type createProjectRequest struct {
	Slug string `json:"slug" binding:"required,max=64"`
	editProjectRequest
}

func (r *editProjectRequest) toInput(slug string) application.CreateProjectInput {
	return application.CreateProjectInput{
		Slug:             slug,
		Title:            r.Title,
		Subtitle:         r.Subtitle,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Icon:             r.Icon,
		Gradient:         r.Gradient,
		Status:           r.Status,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Stats:            r.Stats,
		Features:         r.Features,
	}
}

func projectView(p *entity.Project) gin.H {
	return gin.H{
		"id":                p.ID,
		"slug":              p.Slug,
		"title":             p.Title,
		"subtitle":          p.Subtitle,
		"short_description": p.ShortDescription,
		"description":       p.Description,
		"icon":              p.Icon,
		"gradient":          p.Gradient,
		"status":            p.Status,
		"start_date":        p.StartDate,
		"end_date":          p.EndDate,
		"stats":             p.Stats,
		"features":          p.Features,
		"created_at":        p.CreatedAt,
		"updated_at":        p.UpdatedAt,
	}
}

// List GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("project list failed")
		response.Error[any](c, http.StatusInternalServerError, "could not list projects", nil)
		return
	}
	out := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectView(p))
	}
	response.Success(c, http.StatusOK, out, "projects", nil)
}

// Get GET /api/projects/:slug
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "project not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "could not load project", nil)
		return
	}
	response.Success(c, http.StatusOK, projectView(p), "project", nil)
}

// Search GET /api/projects/search?q=
func (h *ProjectHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("project search failed")
		response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}

// Create POST /api/projects (admin)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.toInput(req.Slug))
	if err != nil {
		if errors.Is(err, application.ErrDuplicateSlug) {
			response.Error[any](c, http.StatusBadRequest, "slug already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("project create failed")
		response.Error[any](c, http.StatusInternalServerError, "could not create project", nil)
		return
	}
	response.Success(c, http.StatusCreated, projectView(p), "project created", nil)
}

// Update PUT /api/projects/:slug (admin)
func (h *ProjectHandler) Update(c *gin.Context) {
	var req editProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), c.Param("slug"), req.toInput(c.Param("slug")))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "project not found", nil)
			return
		}
		h.Logger.WithError(err).Error("project update failed")
		response.Error[any](c, http.StatusInternalServerError, "could not update project", nil)
		return
	}
	response.Success(c, http.StatusOK, projectView(p), "project updated", nil)
}

// Delete DELETE /api/projects/:slug (admin)
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "project not found", nil)
			return
		}
		h.Logger.WithError(err).Error("project delete failed")
		response.Error[any](c, http.StatusInternalServerError, "could not delete project", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "project deleted", nil)
}
