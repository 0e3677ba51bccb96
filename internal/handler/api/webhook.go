package api

import (
	"io"
	"net/http"

	"gembank/internal/domain/webhook"
	"gembank/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// maxWebhookBodyBytes bounds how much of a delivery we are willing to store.
const maxWebhookBodyBytes = 1 << 20

type WebhookHandler struct {
	webhookUseCase commands.WebhookCommands
}

func NewWebhookHandler(webhookUseCase commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{
		webhookUseCase: webhookUseCase,
	}
}

// @Summary Ingest banking webhook
// @Description Receive a signed banking provider event; duplicates are flagged as replays
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Event-Id header string true "Provider event identifier"
// @Param X-Signature header string false "HMAC-SHA256 signature of the raw body"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]any
// @Router /webhooks/banking [post]
func (h *WebhookHandler) IngestBanking(c *gin.Context) {
	eventID := c.GetHeader("X-Event-Id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Event-Id header is required",
		})
		return
	}

	rawBody, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	result, err := h.webhookUseCase.IngestBankingEvent(c.Request.Context(), commands.IngestWebhookRequest{
		Provider:        webhook.ProviderBanking,
		EventID:         eventID,
		RawBody:         rawBody,
		SignatureHeader: c.GetHeader("X-Signature"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if !result.SignatureValid {
		// Recorded for audit, rejected for processing.
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":  "Invalid signature",
			"replay": result.Replay,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"replay":          result.Replay,
		"signature_valid": result.SignatureValid,
	})
}
