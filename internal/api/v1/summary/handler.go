package summary

import (
	"net/http"

	"github.com/a3803896/rent-split/internal/services"
	"github.com/a3803896/rent-split/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	summaries *services.SummaryService
}

func NewHandler(summaries *services.SummaryService) *Handler {
	return &Handler{summaries: summaries}
}

// Get returns paid/owed/net totals for every active resident.
func (h *Handler) Get(c *gin.Context) {
	result, err := h.summaries.Compute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("failed to compute summary"))
		return
	}
	c.JSON(http.StatusOK, result)
}
