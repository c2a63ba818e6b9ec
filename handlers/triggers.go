package handlers

import (
	"net/http"

	"beacon/models"
	"beacon/services/notification"
	"beacon/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentCreatedEvent is the payload delivered by the store's
// document-creation trigger.
type DocumentCreatedEvent struct {
	Collection string              `json:"collection"`
	DocumentID string              `json:"documentId"`
	Value      models.Notification `json:"value"`
}

// DocumentUpdatedEvent carries the before and after snapshots of an
// updated document.
type DocumentUpdatedEvent struct {
	Collection string              `json:"collection"`
	DocumentID string              `json:"documentId"`
	Before     models.Notification `json:"before"`
	After      models.Notification `json:"after"`
}

// TriggerHandler adapts trigger deliveries to the services. Every
// handler answers 204 no matter what: a non-2xx response would make the
// trigger host redeliver the event and risk a duplicate push, so
// failures stop here, in the log.
type TriggerHandler struct {
	Service   notification.NotificationService
	Generator reminder.Generator
}

func NewTriggerHandler(svc notification.NotificationService, gen reminder.Generator) *TriggerHandler {
	return &TriggerHandler{Service: svc, Generator: gen}
}

// DocumentCreatedHandler feeds document creations to the dispatcher.
func (h *TriggerHandler) DocumentCreatedHandler(c *gin.Context) {
	logger := getLogger(c)

	var ev DocumentCreatedEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		logger.Warn("document-created trigger: malformed payload", zap.Error(err))
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.Service.HandleCreated(c.Request.Context(), ev.Collection, ev.DocumentID, ev.Value); err != nil {
		logger.Error("document-created trigger: dispatch failed",
			zap.String("collection", ev.Collection),
			zap.String("documentId", ev.DocumentID),
			zap.Error(err))
	}
	c.Status(http.StatusNoContent)
}

// DocumentUpdatedHandler feeds document updates to the badge synchronizer.
func (h *TriggerHandler) DocumentUpdatedHandler(c *gin.Context) {
	logger := getLogger(c)

	var ev DocumentUpdatedEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		logger.Warn("document-updated trigger: malformed payload", zap.Error(err))
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.Service.HandleUpdated(c.Request.Context(), ev.Collection, ev.DocumentID, ev.Before, ev.After); err != nil {
		logger.Error("document-updated trigger: badge sync failed",
			zap.String("collection", ev.Collection),
			zap.String("documentId", ev.DocumentID),
			zap.Error(err))
	}
	c.Status(http.StatusNoContent)
}

// RunRemindersHandler triggers a reminder pass outside the schedule,
// for operations.
func (h *TriggerHandler) RunRemindersHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Generator.Run(c.Request.Context()); err != nil {
		logger.Error("manual reminder run failed", zap.Error(err))
	}
	c.Status(http.StatusNoContent)
}
