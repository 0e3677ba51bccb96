package api

import (
	"errors"
	"net/http"

	"gembank/internal/domain/deposit"
	"gembank/internal/domain/idempotency"
	reqdto "gembank/internal/handler/dto/request"
	resdto "gembank/internal/handler/dto/response"
	"gembank/internal/handler/middleware"
	"gembank/internal/usecase/commands"
	"gembank/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DepositHandler struct {
	depositUseCase commands.DepositCommands
	depositQueries queries.DepositQueries
}

func NewDepositHandler(depositUseCase commands.DepositCommands, depositQueries queries.DepositQueries) *DepositHandler {
	return &DepositHandler{
		depositUseCase: depositUseCase,
		depositQueries: depositQueries,
	}
}

// @Summary Create deposit
// @Description Create a deposit with idempotency key
// @Tags deposits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDepositRequest true "Deposit request"
// @Success 201 {object} resdto.DepositResponse
// @Success 200 {object} resdto.DepositResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /deposits [post]
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	email, _ := middleware.GetUserEmail(c)

	var req reqdto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateDepositRequest{
		Amount:         req.Amount,
		Currency:       req.Currency,
		IdempotencyKey: req.IdempotencyKey,
	}

	result, err := h.depositUseCase.CreateDeposit(c.Request.Context(), params, userID, email)
	if err != nil {
		switch {
		case errors.Is(err, deposit.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Amount must be a positive number",
			})
		case errors.Is(err, deposit.ErrInvalidCurrency):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Currency must be a 3-letter code",
			})
		case errors.Is(err, idempotency.ErrInvalidKey):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid idempotency key",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.Idempotent {
		// Replayed key: return the original deposit, not a new one.
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"deposit":    resdto.FromDepositRM(result.Deposit),
		"idempotent": result.Idempotent,
	})
}

// @Summary List deposits
// @Description List the caller's deposits, newest first
// @Tags deposits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DepositResponse
// @Failure 401 {object} map[string]string
// @Router /deposits [get]
func (h *DepositHandler) ListDeposits(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	deposits, err := h.depositQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deposits": resdto.FromDepositList(deposits),
	})
}
