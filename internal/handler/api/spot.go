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
)

type SpotHandler struct {
	cmds commands.SpotCommands
	q    queries.SpotQueries
}

func NewSpotHandler(cmds commands.SpotCommands, q queries.SpotQueries) *SpotHandler {
	return &SpotHandler{cmds: cmds, q: q}
}

// @Summary Create spot
// @Description Provision a parking spot
// @Tags spots
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSpotRequest true "Spot request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /spots [post]
func (h *SpotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.CreateSpot(c.Request.Context(), commands.CreateSpotParams{
		Code:  req.Code,
		Floor: req.Floor,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateSpot):
			httperr.AbortWithError(c, http.StatusConflict, err, "Spot code already exists", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid spot attributes", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Header("Location", "/api/spots/"+id.String())
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List spots
// @Description List active parking spots
// @Tags spots
// @Produce json
// @Success 200 {array} resdto.SpotResponse
// @Router /spots [get]
func (h *SpotHandler) List(c *gin.Context) {
	spots, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.SpotResponse, len(spots))
	for i, view := range spots {
		response[i] = resdto.FromSpotView(view)
	}
	c.JSON(http.StatusOK, response)
}
