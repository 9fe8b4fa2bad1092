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
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotCommands commands.SlotCommands
	slotQueries  queries.SlotQueries
}

func NewSlotHandler(slotCommands commands.SlotCommands, slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotCommands: slotCommands,
		slotQueries:  slotQueries,
	}
}

// @Summary List slots
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SlotResponse
// @Router /slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	views, err := h.slotQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotList(views))
}

// @Summary Create slot
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.slotCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotCodeTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot code already exists", nil)
		case errors.Is(err, commands.ErrInvalidSlot), errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary Update slot
// @Description Partial update; only provided fields change
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Slot patch"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots/{id} [put]
func (h *SlotHandler) Update(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID", nil)
		return
	}

	var req reqdto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.slotCommands.Update(c.Request.Context(), slotID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, commands.ErrSlotCodeTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot code already exists", nil)
		case errors.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Delete slot
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID", nil)
		return
	}

	if err := h.slotCommands.Delete(c.Request.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, commands.ErrSlotHasBooking):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot has an active booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Total slot count
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /slots/count [get]
func (h *SlotHandler) Count(c *gin.Context) {
	counts, ok := h.counts(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalSlots": counts.Total})
}

// @Summary Vacant slot count
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /slots/count/vacant [get]
func (h *SlotHandler) CountVacant(c *gin.Context) {
	counts, ok := h.counts(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacantCount": counts.Vacant})
}

// @Summary Occupied slot count
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /slots/count/occupied [get]
func (h *SlotHandler) CountOccupied(c *gin.Context) {
	counts, ok := h.counts(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"occupiedCount": counts.Occupied})
}

// @Summary Reserved slot count
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /slots/count/reserved [get]
func (h *SlotHandler) CountReserved(c *gin.Context) {
	counts, ok := h.counts(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservedCount": counts.Reserved})
}

func (h *SlotHandler) counts(c *gin.Context) (queries.SlotCounts, bool) {
	counts, err := h.slotQueries.Counts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return queries.SlotCounts{}, false
	}
	return counts, true
}
