package room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/a3803896/rent-split/internal/services"
	"github.com/a3803896/rent-split/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	rooms *services.RoomService
}

func NewHandler(rooms *services.RoomService) *Handler {
	return &Handler{rooms: rooms}
}

// List returns every room with its nested active occupants.
func (h *Handler) List(c *gin.Context) {
	rooms, err := h.rooms.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("failed to list rooms"))
		return
	}

	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		occupants := make([]OccupantResponse, 0, len(r.Users))
		for _, u := range r.Users {
			occupants = append(occupants, OccupantResponse{ID: u.ID, Name: u.Name, RoomID: u.RoomID})
		}
		result = append(result, RoomResponse{ID: r.Room.ID, Name: r.Room.Name, Users: occupants})
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	room, err := h.rooms.Create(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("failed to create room"))
		return
	}
	c.JSON(http.StatusOK, utils.NewCreatedResponse(room.ID))
}

// Delete removes a room. A room that still has active occupants is
// rejected before the delete is attempted.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("invalid id"))
		return
	}

	switch err := h.rooms.Delete(uint(id)); {
	case err == nil:
		c.JSON(http.StatusOK, utils.NewOKResponse())
	case errors.Is(err, services.ErrRoomOccupied):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("room still has occupants and cannot be deleted"))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("room not found"))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("database error"))
	}
}
