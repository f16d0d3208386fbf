package api

import (
	"errors"
	"net/http"

	reqdto "condo-parking/internal/handler/dto/request"
	resdto "condo-parking/internal/handler/dto/response"
	"condo-parking/internal/handler/httperr"
	"condo-parking/internal/usecase/commands"
	"condo-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UnitHandler struct {
	cmds     commands.UnitCommands
	q        queries.UnitQueries
	bookings queries.BookingQueries
}

func NewUnitHandler(cmds commands.UnitCommands, q queries.UnitQueries, bookings queries.BookingQueries) *UnitHandler {
	return &UnitHandler{cmds: cmds, q: q, bookings: bookings}
}

// @Summary Create unit
// @Description Provision a condominium unit; quota defaults to the condominium-wide value
// @Tags units
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUnitRequest true "Unit request"
// @Success 201 {object} resdto.UnitResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	var req reqdto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.CreateUnit(c.Request.Context(), commands.CreateUnitParams{
		Number:           req.Number,
		WeeklyQuotaHours: req.WeeklyQuotaHours,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateUnit):
			httperr.AbortWithError(c, http.StatusConflict, err, "Unit number already exists", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid unit attributes", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load unit", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUnitView(view))
}

// @Summary Get unit
// @Description Get a unit with its quota usage
// @Tags units
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} resdto.UnitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id} [get]
func (h *UnitHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unit ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrUnitNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unit not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnitView(view))
}

// @Summary Change unit status
// @Description Mark a unit delinquent or reinstate it
// @Tags units
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param request body reqdto.ChangeUnitStatusRequest true "Status request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/status [patch]
func (h *UnitHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unit ID format", nil)
		return
	}

	var req reqdto.ChangeUnitStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ChangeUnitStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrUnitNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unit not found", nil)
		case errors.Is(err, commands.ErrInvalidUnitStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unit status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List unit bookings
// @Description List a unit's bookings, newest first
// @Tags units
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /units/{id}/bookings [get]
func (h *UnitHandler) ListBookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unit ID format", nil)
		return
	}

	items, err := h.bookings.ListByUnit(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}
