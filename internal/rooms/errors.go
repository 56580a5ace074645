package rooms

import "errors"

// Every failed precondition maps to exactly one of these values; handlers
// translate them to HTTP status codes.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrPlayerNotFound     = errors.New("player not found in room")
	ErrRoomFull           = errors.New("room is full (max 8 players)")
	ErrDuplicateNickname  = errors.New("nickname already taken in room")
	ErrRoomNotInLobby     = errors.New("room is not in lobby state")
	ErrAlreadyStarted     = errors.New("game already started")
	ErrInvalidPlayerCount = errors.New("need 2-8 players to start")
	ErrRoomNotInGame      = errors.New("room has no game in progress")
	ErrNotPlayersTurn     = errors.New("not this player's turn")
	ErrInvalidOption      = errors.New("invalid modification option")
	ErrInvalidNickname    = errors.New("nickname must not be empty")
	ErrInvalidAvatar      = errors.New("avatar id must be 0-9")
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique room code")
)
