package user

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
	users *services.UserService
}

func NewHandler(users *services.UserService) *Handler {
	return &Handler{users: users}
}

// List returns all active residents.
func (h *Handler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("failed to list users"))
		return
	}

	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toUserResponse(u))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.users.Create(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("failed to create user"))
		return
	}
	c.JSON(http.StatusOK, utils.NewCreatedResponse(user.ID))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(id); err != nil {
		respondServiceError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, utils.NewOKResponse())
}

func (h *Handler) AssignRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AssignRoomRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := h.users.AssignRoom(id, req.RoomID); err != nil {
		respondServiceError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, utils.NewOKResponse())
}

func (h *Handler) UnbindRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.users.UnbindRoom(id); err != nil {
		respondServiceError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, utils.NewOKResponse())
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Active:    u.Active,
		RoomID:    u.RoomID,
		CreatedAt: u.CreatedAt,
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("invalid id"))
		return 0, false
	}
	return uint(id), true
}

func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(notFoundMessage))
		return
	}
	c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("database error"))
}
