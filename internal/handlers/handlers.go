package handlers

import (
	"log/slog"

	"github.com/pnicewicz421/big-picture/internal/channels"
	"github.com/pnicewicz421/big-picture/internal/rooms"
)

// HandlerRepo holds all the dependencies required by the handlers.
// This includes the application logger, the room registry, and the
// per-room event broadcasters.
type HandlerRepo struct {
	logger  *slog.Logger
	gr      *channels.GlobalRooms
	manager *rooms.Manager
}

// NewHandlerRepo creates a new HandlerRepo with the provided dependencies.
func NewHandlerRepo(logger *slog.Logger, gr *channels.GlobalRooms, manager *rooms.Manager) *HandlerRepo {
	return &HandlerRepo{
		logger:  logger,
		gr:      gr,
		manager: manager,
	}
}
