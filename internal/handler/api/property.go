package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	commands commands.PropertyCommands
	queries  queries.PropertyQueries
	matcher  queries.ListingMatchQueries
}

func NewPropertyHandler(cmds commands.PropertyCommands, q queries.PropertyQueries, matcher queries.ListingMatchQueries) *PropertyHandler {
	return &PropertyHandler{
		commands: cmds,
		queries:  q,
		matcher:  matcher,
	}
}

// @Summary Create property
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePropertyRequest true "Property"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.commands.CreateProperty(c.Request.Context(), userID, commands.CreatePropertyInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		MaxGuests:   req.MaxGuests,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondProperty(c, http.StatusCreated, view)
}

// @Summary List own properties
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.PropertyResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	views, err := h.queries.ListProperties(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := resdto.FromPropertyViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get property
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetProperty(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondProperty(c, http.StatusOK, view)
}

// @Summary Update property
// @Description Partial update. Omitted fields are kept, null clears optional fields.
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.commands.UpdateProperty(c.Request.Context(), userID, propertyID, commands.UpdatePropertyInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		MaxGuests:   req.MaxGuests,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondProperty(c, http.StatusOK, view)
}

// @Summary Delete property
// @Description Deletes the property together with its bookings and calendar sources
// @Tags properties
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.DeleteProperty(c.Request.Context(), userID, propertyID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rotate export token
// @Description Issues a new public calendar token; the old feed URL stops working
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Router /properties/{id}/export-token [post]
func (h *PropertyHandler) RotateExportToken(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.commands.RotateExportToken(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondProperty(c, http.StatusOK, view)
}

// @Summary Match pasted listing
// @Description Scores the caller's properties against text copied from an OTA listing. Advisory only.
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.MatchListingRequest true "Listing text"
// @Success 200 {object} queries.MatchResult
// @Failure 400 {object} httperr.Response
// @Router /properties/match [post]
func (h *PropertyHandler) MatchListing(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.MatchListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.matcher.Match(c.Request.Context(), userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PropertyHandler) respondProperty(c *gin.Context, status int, view *queries.PropertyView) {
	resp, err := resdto.FromPropertyView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resp)
}
