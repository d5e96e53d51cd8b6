package api

import (
	"errors"
	"net/http"
	"strconv"

	"sportfields/internal/domain/field"
	reqdto "sportfields/internal/handler/dto/request"
	resdto "sportfields/internal/handler/dto/response"
	"sportfields/internal/handler/httperr"
	"sportfields/internal/handler/middleware"
	"sportfields/internal/usecase/commands"
	"sportfields/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FieldHandler struct {
	fieldCommands commands.FieldCommands
	fieldQueries  queries.FieldQueries
}

func NewFieldHandler(fieldCommands commands.FieldCommands, fieldQueries queries.FieldQueries) *FieldHandler {
	return &FieldHandler{
		fieldCommands: fieldCommands,
		fieldQueries:  fieldQueries,
	}
}

// @Summary Add a field
// @Tags fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddFieldRequest true "Field"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /add-field [post]
func (h *FieldHandler) AddField(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errForbidden, "Authentication required.")
		return
	}

	var req reqdto.AddFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	_, err := h.fieldCommands.CreateField(c.Request.Context(), username, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, field.ErrUnknownSport),
			errors.Is(err, field.ErrInvalidSchedule),
			errors.Is(err, field.ErrInvalidSector),
			errors.Is(err, field.ErrInvalidPrice),
			errors.Is(err, field.ErrEmptyName),
			errors.Is(err, field.ErrEmptyAddress):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred.")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Field added successfully!"))
}

// @Summary Update a field's price and schedule
// @Tags fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateFieldRequest true "Update"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /update-field [put]
func (h *FieldHandler) UpdateField(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errForbidden, "Authentication required.")
		return
	}

	var req reqdto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	err := h.fieldCommands.UpdateField(c.Request.Context(), username, req.FieldID, req.PricePerHour, req.Schedule)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrFieldMissing):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found.")
		case errors.Is(err, commands.ErrNotFieldOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "You can only edit your own fields.")
		case errors.Is(err, field.ErrInvalidSchedule), errors.Is(err, field.ErrInvalidPrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update field")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Field updated successfully"))
}

// @Summary Delete a field and its reservations
// @Tags fields
// @Security BearerAuth
// @Produce json
// @Param id path int true "Field ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /delete-field/{id} [delete]
func (h *FieldHandler) DeleteField(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errForbidden, "Authentication required.")
		return
	}

	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid field id")
		return
	}

	if err := h.fieldCommands.DeleteField(c.Request.Context(), username, fieldID); err != nil {
		switch {
		case errors.Is(err, commands.ErrFieldMissing):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found.")
		case errors.Is(err, commands.ErrNotFieldOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "You can only delete your own fields.")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error deleting the field.")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Field deleted successfully!"))
}

// @Summary Search confirmed fields
// @Tags fields
// @Accept json
// @Produce json
// @Param request body reqdto.SearchFieldsRequest true "Filters"
// @Success 200 {object} resdto.SearchFieldsResponse
// @Router /search-fields [post]
func (h *FieldHandler) SearchFields(c *gin.Context) {
	var req reqdto.SearchFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	results, err := h.fieldQueries.Search(c.Request.Context(), req.Sport, req.Sector, todayVenueDate())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred. Please try again.")
		return
	}

	c.JSON(http.StatusOK, resdto.NewSearchFieldsResponse(results))
}

// @Summary List the caller's fields with reservations
// @Tags fields
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SearchFieldsResponse
// @Router /get-owner-fields [post]
func (h *FieldHandler) GetOwnerFields(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errForbidden, "Authentication required.")
		return
	}

	results, err := h.fieldQueries.ListByOwnerWithReservations(c.Request.Context(), username, todayVenueDate())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred. Please try again.")
		return
	}

	c.JSON(http.StatusOK, resdto.NewSearchFieldsResponse(results))
}

// @Summary List all confirmed fields
// @Tags fields
// @Produce json
// @Success 200 {array} resdto.FieldItem
// @Router /get-sports-fields [get]
func (h *FieldHandler) GetSportsFields(c *gin.Context) {
	fields, err := h.fieldQueries.Search(c.Request.Context(), "", 0, todayVenueDate())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch sports fields")
		return
	}

	items := make([]resdto.FieldItem, 0, len(fields))
	for _, f := range fields {
		items = append(items, resdto.NewFieldItem(&f.FieldView))
	}
	c.JSON(http.StatusOK, items)
}

// @Summary List one owner's fields
// @Tags fields
// @Produce json
// @Param username path string true "Owner username"
// @Success 200 {array} resdto.FieldItem
// @Router /get-owner-sports-fields/{username} [get]
func (h *FieldHandler) GetOwnerSportsFields(c *gin.Context) {
	fields, err := h.fieldQueries.ListByOwner(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch owner's sports fields")
		return
	}

	items := make([]resdto.FieldItem, 0, len(fields))
	for _, f := range fields {
		items = append(items, resdto.NewFieldItem(f))
	}
	c.JSON(http.StatusOK, items)
}
