package api

import (
	"errors"
	"net/http"

	reqdto "bookwise/internal/handler/dto/request"
	resdto "bookwise/internal/handler/dto/response"
	"bookwise/internal/handler/httperr"
	"bookwise/internal/handler/middleware"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotCmds commands.SlotCommands
	roomCmds commands.RoomCommands
}

func NewSlotHandler(slotCmds commands.SlotCommands, roomCmds commands.RoomCommands) *SlotHandler {
	return &SlotHandler{slotCmds: slotCmds, roomCmds: roomCmds}
}

// @Summary Create availability slot
// @Description Add an availability slot to a service (staff only)
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.CreateSlotRequest true "Create slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /services/{id}/slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	snap, err := h.slotCmds.CreateSlot(c.Request.Context(), serviceID, req.ToCommand(), userID)
	if err != nil {
		abortWithSlotError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSlotSnapshot(snap))
}

// @Summary Update availability slot window
// @Description Move or resize a slot's time window (staff only)
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Update slot request"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id} [patch]
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	snap, err := h.slotCmds.UpdateSlotWindow(c.Request.Context(), slotID, req.ToCommand(), userID)
	if err != nil {
		abortWithSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotSnapshot(snap))
}

// @Summary Update room status
// @Description Set a room's housekeeping status (staff only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomStatusRequest true "Update room status request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/status [patch]
func (h *SlotHandler) UpdateRoomStatus(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateRoomStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	snap, err := h.roomCmds.SetStatus(c.Request.Context(), roomID, req.Status, userID)
	if err != nil {
		abortWithSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomSnapshot(snap))
}

func abortWithSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, errs.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
	case errors.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, errs.ErrSlotOverlap):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot overlaps an existing slot", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
