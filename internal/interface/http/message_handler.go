package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/morechaitanya606/ucia/internal/application"
	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/pkg/response"
	"github.com/morechaitanya606/ucia/pkg/validation"
)

type MessageHandler struct {
	Svc    *application.MessageService
	Logger *logrus.Logger
}

func NewMessageHandler(svc *application.MessageService, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	Name       string `json:"name" binding:"required,max=120"`
	Email      string `json:"email" binding:"required,email"`
	Message    string `json:"message" binding:"required,max=5000"`
	ProjectRef string `json:"project_ref" binding:"omitempty,uuid"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required,msgstatus"`
}

// Submit POST /api/contact (public)
func (h *MessageHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	m, err := h.Svc.Submit(c.Request.Context(), application.SubmitMessageInput{
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		ProjectRef: req.ProjectRef,
	})
	if err != nil {
		h.Logger.WithError(err).Error("contact submit failed")
		response.Error[any](c, http.StatusInternalServerError, "could not submit message", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": m.ID}, "message received", nil)
}

// List GET /api/messages (admin)
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("message list failed")
		response.Error[any](c, http.StatusInternalServerError, "could not list messages", nil)
		return
	}
	out := make([]gin.H, 0, len(messages))
	for _, m := range messages {
		out = append(out, gin.H{
			"id":          m.ID,
			"name":        m.Name,
			"email":       m.Email,
			"message":     m.Body,
			"project_ref": m.ProjectRef,
			"status":      m.Status,
			"created_at":  m.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, out, "messages", nil)
}

// SetStatus PATCH /api/messages/:id/status (admin)
func (h *MessageHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.SetStatus(c.Request.Context(), c.Param("id"), entity.MessageStatus(req.Status)); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "message not found", nil)
			return
		}
		h.Logger.WithError(err).Error("message status change failed")
		response.Error[any](c, http.StatusInternalServerError, "could not change status", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"status": req.Status}, "status updated", nil)
}

// Delete DELETE /api/messages/:id (admin)
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "message not found", nil)
			return
		}
		h.Logger.WithError(err).Error("message delete failed")
		response.Error[any](c, http.StatusInternalServerError, "could not delete message", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "message deleted", nil)
}
