package rooms

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pnicewicz421/big-picture/internal/game"
)

// State of a room's lifecycle. Lobby -> InGame is the only transition the
// manager performs on request; InGame -> Finished happens when the game
// plays out its rounds. Nothing ever goes backwards.
type State string

const (
	StateLobby    State = "Lobby"
	StateInGame   State = "InGame"
	StateFinished State = "Finished"
)

// Player-count bounds. The ceiling applies at join time, the floor only at
// start time: a lobby may transiently hold 0 or 1 players.
const (
	MinPlayers = 2
	MaxPlayers = 8
)

// Room is a bounded multiplayer session. The player slice keeps join order,
// which later becomes turn order.
//
// The mutex serializes all mutation of one room; the manager's lock only
// guards the registry maps. Helper methods below assume the caller holds mu.
type Room struct {
	ID         string
	Code       string
	Players    []*Player
	State      State
	Game       *game.State
	LastActive time.Time

	mu sync.Mutex

	// Set when the sweeper removes the room while another request still
	// holds a pointer to it.
	closed bool
}

func newRoom(code string, now time.Time) *Room {
	return &Room{
		ID:         uuid.NewString(),
		Code:       code,
		State:      StateLobby,
		LastActive: now,
	}
}

func (r *Room) playerCount() int {
	return len(r.Players)
}

func (r *Room) isFull() bool {
	return len(r.Players) >= MaxPlayers
}

func (r *Room) canStart() bool {
	n := len(r.Players)
	return n >= MinPlayers && n <= MaxPlayers
}

func (r *Room) hasNickname(nickname string) bool {
	for _, p := range r.Players {
		if p.MatchesNickname(nickname) {
			return true
		}
	}
	return false
}

func (r *Room) findPlayer(playerID string) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (r *Room) findPlayerByNickname(nickname string) *Player {
	for _, p := range r.Players {
		if p.MatchesNickname(nickname) {
			return p
		}
	}
	return nil
}

func (r *Room) removePlayer(playerID string) bool {
	for i, p := range r.Players {
		if p.ID == playerID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Room) touch(now time.Time) {
	r.LastActive = now
}
