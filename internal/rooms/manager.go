package rooms

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pnicewicz421/big-picture/internal/game"
)

// Manager is the authoritative registry of all rooms. Its lock only guards
// the registry maps (room insertion, code uniqueness, sweep); everything
// inside one room is serialized by that room's own mutex, so operations on
// different rooms never block each other.
type Manager struct {
	mu     sync.RWMutex
	byID   map[string]*Room
	byCode map[string]*Room
	logger *slog.Logger
}

// NewManager creates an empty registry.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		byID:   make(map[string]*Room),
		byCode: make(map[string]*Room),
		logger: logger,
	}
}

// CreateRoom allocates a room in Lobby state with a fresh id and a code
// unique among live rooms.
func (m *Manager) CreateRoom() (*RoomView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	code, err := generateCode(m.byCode)
	if err != nil {
		return nil, err
	}

	room := newRoom(code, time.Now())
	m.byID[room.ID] = room
	m.byCode[room.Code] = room

	m.logger.Info("room created", "room_id", room.ID, "code", room.Code)

	room.mu.Lock()
	defer room.mu.Unlock()
	return room.snapshot(), nil
}

// JoinRoom admits a new player to a lobby. The nickname must be free in that
// room and the room must have a seat left.
func (m *Manager) JoinRoom(code, nickname string, avatarID uint8) (playerID, roomID string, err error) {
	if nickname == "" {
		return "", "", ErrInvalidNickname
	}
	if avatarID > 9 {
		return "", "", ErrInvalidAvatar
	}

	room := m.roomByCode(code)
	if room == nil {
		return "", "", ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	switch {
	case room.closed:
		return "", "", ErrRoomNotFound
	case room.State != StateLobby:
		return "", "", ErrRoomNotInLobby
	case room.isFull():
		return "", "", ErrRoomFull
	case room.hasNickname(nickname):
		return "", "", ErrDuplicateNickname
	}

	player := NewPlayer(nickname, avatarID)
	room.Players = append(room.Players, player)
	room.touch(time.Now())

	return player.ID, room.ID, nil
}

// RejoinRoom reconnects a previously seen player by nickname. Unlike
// JoinRoom this works in any room state: a player who dropped mid-game gets
// their original identity back.
func (m *Manager) RejoinRoom(code, nickname string) (playerID, roomID string, err error) {
	room := m.roomByCode(code)
	if room == nil {
		return "", "", ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.closed {
		return "", "", ErrRoomNotFound
	}

	player := room.findPlayerByNickname(nickname)
	if player == nil {
		return "", "", ErrPlayerNotFound
	}

	player.Reconnect()
	room.touch(time.Now())

	return player.ID, room.ID, nil
}

// LeaveRoom removes a player from a lobby outright, freeing the nickname and
// the seat. Once the game has started the record is kept with
// Connected=false so the player can rejoin later.
func (m *Manager) LeaveRoom(roomID, playerID string) error {
	room := m.roomByID(roomID)
	if room == nil {
		return ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.closed {
		return ErrRoomNotFound
	}

	if room.State == StateLobby {
		if !room.removePlayer(playerID) {
			return ErrPlayerNotFound
		}
		room.touch(time.Now())
		return nil
	}

	player := room.findPlayer(playerID)
	if player == nil {
		return ErrPlayerNotFound
	}

	player.Disconnect()
	room.touch(time.Now())
	return nil
}

// StartGame performs the one irreversible transition the manager owns:
// Lobby -> InGame. Turn order is join order.
func (m *Manager) StartGame(roomID string) (*RoomView, error) {
	room := m.roomByID(roomID)
	if room == nil {
		return nil, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	switch {
	case room.closed:
		return nil, ErrRoomNotFound
	case !room.canStart():
		return nil, ErrInvalidPlayerCount
	case room.State != StateLobby:
		return nil, ErrAlreadyStarted
	}

	order := make([]string, 0, len(room.Players))
	for _, p := range room.Players {
		order = append(order, p.ID)
	}

	goal, startingObjects := game.GenerateAssets(len(order))
	room.Game = game.New(goal, startingObjects[0], order, game.DefaultMaxRounds)
	room.State = StateInGame
	room.touch(time.Now())

	m.logger.Info("game started", "room_id", room.ID, "players", len(order))

	return room.snapshot(), nil
}

// RecordAction applies the current player's turn, advances the turn order
// and, when the last round completes, moves the room to Finished.
func (m *Manager) RecordAction(roomID, playerID string, optionID uint8, description string) (*RoomView, error) {
	if optionID > 3 {
		return nil, ErrInvalidOption
	}

	room := m.roomByID(roomID)
	if room == nil {
		return nil, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.closed {
		return nil, ErrRoomNotFound
	}
	if room.State != StateInGame || room.Game == nil {
		return nil, ErrRoomNotInGame
	}
	if room.findPlayer(playerID) == nil {
		return nil, ErrPlayerNotFound
	}

	current, ok := room.Game.CurrentPlayer()
	if !ok || current != playerID {
		return nil, ErrNotPlayersTurn
	}

	room.Game.RecordAction(game.Action{
		PlayerID:       playerID,
		Round:          room.Game.CurrentRound,
		OptionChosen:   optionID,
		Description:    description,
		ResultingImage: game.ApplyModification(room.Game.CurrentImage, description),
	})

	if room.Game.IsFinished() {
		room.State = StateFinished
		m.logger.Info("game finished", "room_id", room.ID, "turns", room.Game.TotalTurns())
	}

	room.touch(time.Now())
	return room.snapshot(), nil
}

// GetRoomView returns a read-only snapshot of one room.
func (m *Manager) GetRoomView(roomID string) (*RoomView, error) {
	room := m.roomByID(roomID)
	if room == nil {
		return nil, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.closed {
		return nil, ErrRoomNotFound
	}
	return room.snapshot(), nil
}

// ListRooms returns a summary of every live room.
func (m *Manager) ListRooms() []*RoomSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]*RoomSummary, 0, len(m.byID))
	for _, room := range m.byID {
		room.mu.Lock()
		list = append(list, &RoomSummary{
			RoomID:      room.ID,
			RoomCode:    room.Code,
			State:       room.State,
			PlayerCount: room.playerCount(),
		})
		room.mu.Unlock()
	}
	return list
}

// RoomCount returns the number of live rooms.
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// Sweep destroys rooms idle for longer than ttl and returns how many were
// removed. Destroyed room ids are reported so callers can tear down any
// attached event streams.
func (m *Manager) Sweep(ttl time.Duration) (removed []string) {
	cutoff := time.Now().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, room := range m.byID {
		room.mu.Lock()
		expired := room.LastActive.Before(cutoff)
		if expired {
			room.closed = true
			delete(m.byID, id)
			delete(m.byCode, room.Code)
			removed = append(removed, id)
		}
		room.mu.Unlock()
	}

	if len(removed) > 0 {
		m.logger.Info("swept idle rooms", "count", len(removed))
	}
	return removed
}

func (m *Manager) roomByCode(code string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byCode[code]
}

func (m *Manager) roomByID(roomID string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byID[roomID]
}
