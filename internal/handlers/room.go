package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pnicewicz421/big-picture/internal/events"
	"github.com/pnicewicz421/big-picture/internal/rooms"
	"github.com/pnicewicz421/big-picture/pkg/common/request"
	"github.com/pnicewicz421/big-picture/pkg/common/response"
)

// statusForError translates the registry's closed error set to HTTP status
// codes. Anything unknown is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound), errors.Is(err, rooms.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, rooms.ErrRoomFull),
		errors.Is(err, rooms.ErrDuplicateNickname),
		errors.Is(err, rooms.ErrRoomNotInLobby),
		errors.Is(err, rooms.ErrAlreadyStarted),
		errors.Is(err, rooms.ErrInvalidPlayerCount),
		errors.Is(err, rooms.ErrRoomNotInGame),
		errors.Is(err, rooms.ErrNotPlayersTurn):
		return http.StatusConflict
	case errors.Is(err, rooms.ErrInvalidNickname),
		errors.Is(err, rooms.ErrInvalidAvatar),
		errors.Is(err, rooms.ErrInvalidOption):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (hr *HandlerRepo) errorResponse(w http.ResponseWriter, err error) {
	response.JSON(w, statusForError(err), nil, true, err.Error())
}

type CreateRoomResponse struct {
	RoomCode string `json:"room_code"`
	RoomID   string `json:"room_id"`
}

func (hr *HandlerRepo) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	view, err := hr.manager.CreateRoom()
	if err != nil {
		hr.logger.Error("failed to create room", "error", err)
		hr.errorResponse(w, err)
		return
	}

	hr.gr.CreateRoom(view.RoomID)

	hr.logger.Info("room created", "room_id", view.RoomID, "code", view.RoomCode)

	data := CreateRoomResponse{RoomCode: view.RoomCode, RoomID: view.RoomID}
	err = response.JSON(w, http.StatusCreated, data, false, "room created successfully")
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, nil, true, err.Error())
	}
}

func (hr *HandlerRepo) ListRoomsHandler(w http.ResponseWriter, r *http.Request) {
	list := hr.manager.ListRooms()

	err := response.JSON(w, http.StatusOK, list, false, "get rooms successfully")
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, nil, true, err.Error())
	}
}

type JoinRoomRequest struct {
	Nickname string `json:"nickname"`
	AvatarID uint8  `json:"avatar_id"`
}

type JoinRoomResponse struct {
	PlayerID string `json:"player_id"`
	RoomID   string `json:"room_id"`
}

func (hr *HandlerRepo) JoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "room")

	var req JoinRoomRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.JSON(w, http.StatusBadRequest, nil, true, err.Error())
		return
	}

	playerID, roomID, err := hr.manager.JoinRoom(code, req.Nickname, req.AvatarID)
	if err != nil {
		hr.errorResponse(w, err)
		return
	}

	hr.gr.Publish(roomID, events.PlayerJoined{PlayerID: playerID, RoomID: roomID, Nickname: req.Nickname})
	hr.logger.Info("player joined", "player_id", playerID, "room_id", roomID, "code", code, "nickname", req.Nickname)

	data := JoinRoomResponse{PlayerID: playerID, RoomID: roomID}
	response.JSON(w, http.StatusOK, data, false, "joined room successfully")
}

type RejoinRoomRequest struct {
	Nickname string `json:"nickname"`
}

func (hr *HandlerRepo) RejoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "room")

	var req RejoinRoomRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.JSON(w, http.StatusBadRequest, nil, true, err.Error())
		return
	}

	playerID, roomID, err := hr.manager.RejoinRoom(code, req.Nickname)
	if err != nil {
		hr.errorResponse(w, err)
		return
	}

	hr.gr.Publish(roomID, events.PlayerRejoined{PlayerID: playerID, RoomID: roomID, Nickname: req.Nickname})
	hr.logger.Info("player rejoined", "player_id", playerID, "room_id", roomID, "code", code)

	data := JoinRoomResponse{PlayerID: playerID, RoomID: roomID}
	response.JSON(w, http.StatusOK, data, false, "rejoined room successfully")
}

func (hr *HandlerRepo) LeaveRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "room")
	playerID := chi.URLParam(r, "playerID")

	if err := hr.manager.LeaveRoom(roomID, playerID); err != nil {
		hr.errorResponse(w, err)
		return
	}

	hr.gr.Publish(roomID, events.PlayerLeft{PlayerID: playerID, RoomID: roomID})
	hr.logger.Info("player left", "player_id", playerID, "room_id", roomID)

	response.JSON(w, http.StatusOK, nil, false, "left room successfully")
}

func (hr *HandlerRepo) StartGameHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "room")

	view, err := hr.manager.StartGame(roomID)
	if err != nil {
		hr.errorResponse(w, err)
		return
	}

	hr.gr.Publish(roomID, events.GameStarted{RoomID: roomID, PlayerCount: view.PlayerCount})
	hr.logger.Info("game started", "room_id", roomID, "players", view.PlayerCount)

	response.JSON(w, http.StatusOK, view, false, "game started successfully")
}

type RecordActionRequest struct {
	PlayerID    string `json:"player_id"`
	OptionID    uint8  `json:"option_id"`
	Description string `json:"description"`
}

func (hr *HandlerRepo) RecordActionHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "room")

	var req RecordActionRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.JSON(w, http.StatusBadRequest, nil, true, err.Error())
		return
	}

	view, err := hr.manager.RecordAction(roomID, req.PlayerID, req.OptionID, req.Description)
	if err != nil {
		hr.errorResponse(w, err)
		return
	}

	if view.Game != nil {
		hr.gr.Publish(roomID, events.TurnAdvanced{
			RoomID:       roomID,
			PlayerID:     req.PlayerID,
			Round:        view.Game.CurrentRound,
			CurrentImage: view.Game.CurrentImage,
		})
		if view.State == rooms.StateFinished {
			hr.gr.Publish(roomID, events.GameFinished{RoomID: roomID, TotalTurns: view.Game.TotalTurns()})
		}
	}

	hr.logger.Info("turn recorded", "room_id", roomID, "player_id", req.PlayerID, "option", req.OptionID)

	response.JSON(w, http.StatusOK, view, false, "action recorded successfully")
}

func (hr *HandlerRepo) GetRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "room")

	view, err := hr.manager.GetRoomView(roomID)
	if err != nil {
		hr.errorResponse(w, err)
		return
	}

	response.JSON(w, http.StatusOK, view, false, "get room successfully")
}
