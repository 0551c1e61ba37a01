package api

import (
	"net/http"
	"strconv"

	resdto "tourmate/internal/handler/dto/response"
	"tourmate/internal/handler/httperr"
	"tourmate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	q queries.DestinationQueries
}

func NewDestinationHandler(q queries.DestinationQueries) *DestinationHandler {
	return &DestinationHandler{q: q}
}

// @Summary List destinations
// @Description List destinations with optional name filter and page/limit pagination
// @Tags destinations
// @Produce json
// @Param name query string false "Case-insensitive name substring filter"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 9)"
// @Success 200 {object} resdto.DestinationPageResponse
// @Failure 500 {object} map[string]string
// @Router /destinations [get]
func (h *DestinationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	view, err := h.q.ListDestinations(c.Request.Context(), c.Query("name"), page, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list destinations", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDestinationPage(view))
}

// @Summary List destination reviews
// @Description List the reviews embedded on a destination, empty when none exist
// @Tags destinations
// @Produce json
// @Param id path int true "Destination ID"
// @Success 200 {array} resdto.DestinationReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /destinations/{id}/reviews [get]
func (h *DestinationHandler) Reviews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	views, err := h.q.DestinationReviews(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resdto.FromDestinationReviews(views)})
}
