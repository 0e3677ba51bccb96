//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gembank/internal/handler/api"
	"gembank/internal/pkg/errs"
	"gembank/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWebhookCommands struct {
	lastReq commands.IngestWebhookRequest
	result  *commands.IngestWebhookResult
	err     error
}

func (f *fakeWebhookCommands) IngestBankingEvent(_ context.Context, req commands.IngestWebhookRequest) (*commands.IngestWebhookResult, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newWebhookRouter(uc *fakeWebhookCommands) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewWebhookHandler(uc)
	router.POST("/api/webhooks/banking", handler.IngestBanking)
	return router
}

func performWebhook(router *gin.Engine, eventID, signature, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/banking", strings.NewReader(body))
	if eventID != "" {
		req.Header.Set("X-Event-Id", eventID)
	}
	if signature != "" {
		req.Header.Set("X-Signature", signature)
	}
	router.ServeHTTP(rec, req)
	return rec
}

func TestIngestBanking(t *testing.T) {
	t.Run("valid delivery returns 200 with flags", func(t *testing.T) {
		uc := &fakeWebhookCommands{result: &commands.IngestWebhookResult{SignatureValid: true, Replay: false}}
		router := newWebhookRouter(uc)

		rec := performWebhook(router, "evt-1", "sha256=abc", `{"type":"deposit.received"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, false, body["replay"])
		assert.Equal(t, true, body["signature_valid"])

		assert.Equal(t, "banking", uc.lastReq.Provider)
		assert.Equal(t, "evt-1", uc.lastReq.EventID)
		assert.Equal(t, `{"type":"deposit.received"}`, string(uc.lastReq.RawBody))
		assert.Equal(t, "sha256=abc", uc.lastReq.SignatureHeader)
	})

	t.Run("missing event id is a 400 before any recording", func(t *testing.T) {
		uc := &fakeWebhookCommands{result: &commands.IngestWebhookResult{}}
		router := newWebhookRouter(uc)

		rec := performWebhook(router, "", "sha256=abc", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, uc.lastReq.EventID)
	})

	t.Run("invalid signature returns 401 with replay flag", func(t *testing.T) {
		uc := &fakeWebhookCommands{result: &commands.IngestWebhookResult{SignatureValid: false, Replay: true}}
		router := newWebhookRouter(uc)

		rec := performWebhook(router, "evt-1", "sha256=bad", `{}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["replay"])
	})

	t.Run("replayed valid delivery returns 200 with replay true", func(t *testing.T) {
		uc := &fakeWebhookCommands{result: &commands.IngestWebhookResult{SignatureValid: true, Replay: true}}
		router := newWebhookRouter(uc)

		rec := performWebhook(router, "evt-1", "sha256=abc", `{}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["replay"])
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		uc := &fakeWebhookCommands{err: errs.New("db down")}
		router := newWebhookRouter(uc)

		rec := performWebhook(router, "evt-1", "sha256=abc", `{}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
