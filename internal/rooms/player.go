package rooms

import "github.com/google/uuid"

// Player is one participant in a room. A disconnected player keeps their
// record (and nickname) while the game runs so they can rejoin later.
type Player struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	AvatarID  uint8  `json:"avatar_id"`
	Connected bool   `json:"connected"`
}

// NewPlayer creates a connected player with a fresh random id.
func NewPlayer(nickname string, avatarID uint8) *Player {
	return &Player{
		ID:        uuid.NewString(),
		Nickname:  nickname,
		AvatarID:  avatarID,
		Connected: true,
	}
}

// MatchesNickname reports whether nickname identifies this player for
// rejoin. The comparison is an exact byte match: no trimming, no case
// folding. That is a policy choice, documented here so nobody "fixes" it.
func (p *Player) MatchesNickname(nickname string) bool {
	return p.Nickname == nickname
}

// Disconnect marks the player as gone without forgetting them.
func (p *Player) Disconnect() {
	p.Connected = false
}

// Reconnect marks the player as back.
func (p *Player) Reconnect() {
	p.Connected = true
}
