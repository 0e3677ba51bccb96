package api

import (
	"net/http"

	resdto "gembank/internal/handler/dto/response"
	"gembank/internal/handler/httperr"
	"gembank/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	operationsQueries queries.OperationsQueries
}

func NewAdminHandler(operationsQueries queries.OperationsQueries) *AdminHandler {
	return &AdminHandler{
		operationsQueries: operationsQueries,
	}
}

// @Summary List recent operations
// @Description List the most recent operations-log entries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OperationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/operations [get]
func (h *AdminHandler) ListOperations(c *gin.Context) {
	operations, err := h.operationsQueries.ListRecent(c.Request.Context(), queries.DefaultOperationsLimit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load operations", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"operations": resdto.FromOperationList(operations),
	})
}
