package handlers

import (
	"net/http"

	"salonbot/models"
	"salonbot/services/dialog"
	"salonbot/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WebhookHandler terminates the Dialogflow fulfillment endpoint.
type WebhookHandler struct {
	Dialog dialog.Service
}

func NewWebhookHandler(svc dialog.Service) *WebhookHandler {
	return &WebhookHandler{Dialog: svc}
}

// Handle validates the request envelope and hands the turn to the dialog
// service. Only a structurally broken request gets a non-200: the agent
// treats webhook errors as outages, so every conversational failure is
// answered as a fulfillment message instead.
func (h *WebhookHandler) Handle(c *gin.Context) {
	logger := utils.GetLogger()
	requestID := uuid.New().String()

	var req models.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Webhook request body unreadable",
			zap.String("requestID", requestID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing request body"})
		return
	}

	if req.QueryResult == nil {
		logger.Warn("Webhook request missing queryResult",
			zap.String("requestID", requestID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'queryResult' in request body"})
		return
	}

	if req.QueryResult.Action == "" {
		logger.Warn("Webhook request missing action",
			zap.String("requestID", requestID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'action' in 'queryResult'"})
		return
	}

	logger.Info("Dispatching webhook action",
		zap.String("requestID", requestID),
		zap.String("action", req.QueryResult.Action),
		zap.String("session", req.Session))

	resp := h.Dialog.Dispatch(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}

// Health is a liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
