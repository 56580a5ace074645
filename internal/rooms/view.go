package rooms

import "github.com/pnicewicz421/big-picture/internal/game"

// PlayerView is the wire shape of one player inside a room view.
type PlayerView struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	AvatarID  uint8  `json:"avatar_id"`
	Connected bool   `json:"connected"`
}

// RoomView is a point-in-time snapshot of a room. It shares no memory with
// the live room, so callers can hold it without a lock.
type RoomView struct {
	RoomID      string       `json:"room_id"`
	RoomCode    string       `json:"room_code"`
	State       State        `json:"state"`
	PlayerCount int          `json:"player_count"`
	Players     []PlayerView `json:"players"`
	Game        *game.State  `json:"game,omitempty"`
}

// RoomSummary is the compact shape used by the room listing.
type RoomSummary struct {
	RoomID      string `json:"room_id"`
	RoomCode    string `json:"room_code"`
	State       State  `json:"state"`
	PlayerCount int    `json:"player_count"`
}

// snapshot builds a RoomView. Caller holds r.mu.
func (r *Room) snapshot() *RoomView {
	players := make([]PlayerView, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, PlayerView{
			ID:        p.ID,
			Nickname:  p.Nickname,
			AvatarID:  p.AvatarID,
			Connected: p.Connected,
		})
	}

	view := &RoomView{
		RoomID:      r.ID,
		RoomCode:    r.Code,
		State:       r.State,
		PlayerCount: len(r.Players),
		Players:     players,
	}

	if r.Game != nil {
		g := *r.Game
		g.PlayersInOrder = append([]string(nil), r.Game.PlayersInOrder...)
		g.Actions = append([]game.Action(nil), r.Game.Actions...)
		view.Game = &g
	}

	return view
}
