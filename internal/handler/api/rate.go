package api

import (
	"errors"
	"net/http"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/httperr"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	rateCommands commands.RateCommands
	rateQueries  queries.RateQueries
}

func NewRateHandler(rateCommands commands.RateCommands, rateQueries queries.RateQueries) *RateHandler {
	return &RateHandler{
		rateCommands: rateCommands,
		rateQueries:  rateQueries,
	}
}

// @Summary Get billing rate
// @Description Returns the current rate, seeding the default on first read
// @Tags rate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RateResponse
// @Router /rate [get]
func (h *RateHandler) Get(c *gin.Context) {
	view, err := h.rateQueries.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRateView(view))
}

// @Summary Set billing rate
// @Tags rate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetRateRequest true "Rate request"
// @Success 200 {object} resdto.RateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rate [put]
func (h *RateHandler) Set(c *gin.Context) {
	var req reqdto.SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.rateCommands.Set(c.Request.Context(), req.Price, req.Interval)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidRate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rate values", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRateView(view))
}
