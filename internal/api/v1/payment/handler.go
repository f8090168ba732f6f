package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/a3803896/rent-split/internal/models"
	"github.com/a3803896/rent-split/internal/services"
	"github.com/a3803896/rent-split/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	payments *services.PaymentService
}

func NewHandler(payments *services.PaymentService) *Handler {
	return &Handler{payments: payments}
}

// List returns active, non-archived payments, newest first.
func (h *Handler) List(c *gin.Context) {
	items, err := h.payments.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("failed to list payments"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListWithSplits returns payments filtered by ?archived=0|1, each
// enriched with its share breakdown.
func (h *Handler) ListWithSplits(c *gin.Context) {
	archived := c.Query("archived") == "1"

	items, err := h.payments.ListWithSplits(archived)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("failed to list payments"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create validates the request, computes the split, and persists the
// payment with its shares atomically.
func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.SplitBy == "" {
		req.SplitBy = string(models.SplitByUser)
	}
	mode := models.SplitMode(req.SplitBy)
	if !mode.Valid() {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("split_by must be 'user' or 'room'"))
		return
	}
	if mode == models.SplitByUser && len(req.SplitUsers) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("splitUsers is required when splitting by user"))
		return
	}
	if mode == models.SplitByRoom && len(req.SplitRooms) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("splitRooms is required when splitting by room"))
		return
	}

	payment, err := h.payments.Create(services.CreatePaymentInput{
		Date:       req.Date,
		Category:   req.Category,
		Amount:     req.Amount,
		PayerID:    req.PayerID,
		Note:       req.Note,
		SplitBy:    mode,
		SplitUsers: req.SplitUsers,
		SplitRooms: req.SplitRooms,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("failed to create payment"))
		return
	}
	c.JSON(http.StatusOK, utils.NewCreatedResponse(payment.ID))
}

// Delete soft-deletes a payment and all of its shares.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.payments.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewOKResponse())
}

func (h *Handler) Archive(c *gin.Context) {
	h.setArchived(c, true)
}

func (h *Handler) Unarchive(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *Handler) setArchived(c *gin.Context, archived bool) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.payments.SetArchived(id, archived); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewOKResponse())
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("invalid id"))
		return 0, false
	}
	return uint(id), true
}

func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("payment not found"))
		return
	}
	c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("database error"))
}
