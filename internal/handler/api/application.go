package api

import (
	"net/http"

	reqdto "tourmate/internal/handler/dto/request"
	resdto "tourmate/internal/handler/dto/response"
	"tourmate/internal/handler/httperr"
	"tourmate/internal/infra"
	"tourmate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	cmds commands.ApplicationCommands
}

func NewApplicationHandler(cmds commands.ApplicationCommands) *ApplicationHandler {
	return &ApplicationHandler{cmds: cmds}
}

// @Summary Submit guide application
// @Description Submit an application to become a tour guide
// @Tags applications
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitApplicationRequest true "Submit application request"
// @Success 201 {object} resdto.SubmitApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /guide-applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req reqdto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SubmitApplication(c.Request.Context(), req.ToCommand())
	if err != nil {
		if infra.IsKind(err, infra.KindDBFailure) {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Submit application failed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Submit application failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.SubmitApplicationResponse{
		ApplicationID: result.ApplicationID,
		Status:        "pending",
	})
}
