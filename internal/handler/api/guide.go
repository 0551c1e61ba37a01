package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "tourmate/internal/handler/dto/response"
	"tourmate/internal/handler/httperr"
	"tourmate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuideHandler struct {
	q queries.GuideQueries
}

func NewGuideHandler(q queries.GuideQueries) *GuideHandler {
	return &GuideHandler{q: q}
}

// @Summary List guides
// @Description List guides with an optional search term over name, location and specialties
// @Tags guides
// @Produce json
// @Param search query string false "Case-insensitive search term"
// @Success 200 {array} resdto.GuideResponse
// @Failure 500 {object} map[string]string
// @Router /guides [get]
func (h *GuideHandler) List(c *gin.Context) {
	views, err := h.q.ListGuides(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list guides", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guides": resdto.FromGuideList(views)})
}

// @Summary Get guide
// @Description Get a guide with their destinations by ID
// @Tags guides
// @Produce json
// @Param id path int true "Guide ID"
// @Success 200 {object} resdto.GuideResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guides/{id} [get]
func (h *GuideHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetGuide(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrGuideNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Guide not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load guide", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuideView(view))
}
