package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "tourmate/internal/handler/dto/request"
	resdto "tourmate/internal/handler/dto/response"
	"tourmate/internal/handler/httperr"
	"tourmate/internal/usecase/commands"
	"tourmate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TourHandler struct {
	cmds commands.TourCommands
	q    queries.TourQueries
}

func NewTourHandler(cmds commands.TourCommands, q queries.TourQueries) *TourHandler {
	return &TourHandler{cmds: cmds, q: q}
}

// @Summary List booked tours
// @Description List all booked tours with status derived at read time
// @Tags tours
// @Produce json
// @Success 200 {array} resdto.BookedTourResponse
// @Failure 500 {object} map[string]string
// @Router /tours [get]
func (h *TourHandler) List(c *gin.Context) {
	views, err := h.q.ListBookedTours(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list tours", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": resdto.FromBookedTourList(views)})
}

// @Summary Get booked tour
// @Description Get a booked tour by ID
// @Tags tours
// @Produce json
// @Param id path int true "Tour ID"
// @Success 200 {object} resdto.BookedTourResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tours/{id} [get]
func (h *TourHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetBookedTour(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrTourNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tour not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tour", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookedTourView(view))
}

// @Summary Book tour
// @Description Book a destination offered by a guide
// @Tags tours
// @Accept json
// @Produce json
// @Param request body reqdto.BookTourRequest true "Book tour request"
// @Success 201 {object} resdto.BookedTourResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tours [post]
func (h *TourHandler) Create(c *gin.Context) {
	var req reqdto.BookTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.BookTour(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, bookingErrStatus(err), err, "Booking failed", nil)
		return
	}
	view, err := h.q.GetBookedTour(c.Request.Context(), result.TourID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tour", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookedTourView(view))
}

// @Summary Submit tour review
// @Description Attach or replace the review on a booked tour
// @Tags tours
// @Accept json
// @Produce json
// @Param id path int true "Tour ID"
// @Param request body reqdto.SubmitReviewRequest true "Submit review request"
// @Success 200 {object} resdto.BookedTourResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tours/{id}/review [put]
func (h *TourHandler) SubmitReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SubmitReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.SubmitReview(c.Request.Context(), id, req.ToCommand()); err != nil {
		if errors.Is(err, commands.ErrTourNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tour not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Submit review failed", nil)
		return
	}
	view, err := h.q.GetBookedTour(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tour", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookedTourView(view))
}

func bookingErrStatus(err error) int {
	switch {
	case errors.Is(err, commands.ErrGuideNotFound),
		errors.Is(err, commands.ErrDestinationNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrDuplicateTourID):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
