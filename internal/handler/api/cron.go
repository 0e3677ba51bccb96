package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	reqdto "gembank/internal/handler/dto/request"
	"gembank/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CronHandler struct {
	worker commands.OutboxWorker
	secret string
}

func NewCronHandler(worker commands.OutboxWorker, secret string) *CronHandler {
	return &CronHandler{
		worker: worker,
		secret: secret,
	}
}

// @Summary Run email worker
// @Description Drain one batch of due notification jobs; invoked by the scheduler
// @Tags cron
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer cron secret"
// @Param X-Idempotency-Key header string false "Invocation idempotency key"
// @Success 200 {object} commands.WorkerSummary
// @Failure 401 {object} map[string]string
// @Router /cron/email-worker [post]
func (h *CronHandler) RunWorker(c *gin.Context) {
	if !h.authorized(c.GetHeader("Authorization")) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	idempotencyKey := strings.TrimSpace(c.GetHeader("X-Idempotency-Key"))
	if idempotencyKey == "" && c.Request.ContentLength > 0 {
		var req reqdto.RunWorkerRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			idempotencyKey = strings.TrimSpace(req.IdempotencyKey)
		}
	}

	summary, err := h.worker.Run(c.Request.Context(), idempotencyKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *CronHandler) authorized(authHeader string) bool {
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(h.secret)) == 1
}
