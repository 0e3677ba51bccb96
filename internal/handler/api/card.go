package api

import (
	"errors"
	"net/http"

	"gembank/internal/domain/card"
	"gembank/internal/domain/idempotency"
	reqdto "gembank/internal/handler/dto/request"
	resdto "gembank/internal/handler/dto/response"
	"gembank/internal/handler/middleware"
	"gembank/internal/usecase/commands"
	"gembank/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardUseCase commands.CardCommands
	cardQueries queries.CardQueries
}

func NewCardHandler(cardUseCase commands.CardCommands, cardQueries queries.CardQueries) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		cardQueries: cardQueries,
	}
}

// @Summary Request bitcoin card
// @Description Request a bitcoin card; one active card per user
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestCardRequest true "Card request"
// @Success 201 {object} resdto.CardResponse
// @Success 200 {object} resdto.CardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cards [post]
func (h *CardHandler) RequestCard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	email, _ := middleware.GetUserEmail(c)

	var req reqdto.RequestCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.RequestCardRequest{
		Nickname:       req.Nickname,
		IdempotencyKey: req.IdempotencyKey,
	}

	result, err := h.cardUseCase.RequestCard(c.Request.Context(), params, userID, email)
	if err != nil {
		switch {
		case errors.Is(err, card.ErrActiveCardExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An active card request already exists",
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
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"card":       resdto.FromCardRM(result.Card),
		"idempotent": result.Idempotent,
	})
}

// @Summary List cards
// @Description List the caller's bitcoin cards
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CardResponse
// @Failure 401 {object} map[string]string
// @Router /cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cards, err := h.cardQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cards": resdto.FromCardList(cards),
	})
}
