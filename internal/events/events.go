package events

type EventType string

const (
	PLAYER_JOINED   EventType = "PLAYER_JOINED"
	PLAYER_LEFT     EventType = "PLAYER_LEFT"
	PLAYER_REJOINED EventType = "PLAYER_REJOINED"
	GAME_STARTED    EventType = "GAME_STARTED"
	TURN_ADVANCED   EventType = "TURN_ADVANCED"
	GAME_FINISHED   EventType = "GAME_FINISHED"
	ROOM_CLOSED     EventType = "ROOM_CLOSED"
)

// Event wrapper for the SSE listeners
type SseEvent struct {
	EventType EventType `json:"event_type"`
	Data      any       `json:"data"`
}

type PlayerJoined struct {
	PlayerID string `json:"player_id"`
	RoomID   string `json:"room_id"`
	Nickname string `json:"nickname"`
}

type PlayerLeft struct {
	PlayerID string `json:"player_id"`
	RoomID   string `json:"room_id"`
}

type PlayerRejoined struct {
	PlayerID string `json:"player_id"`
	RoomID   string `json:"room_id"`
	Nickname string `json:"nickname"`
}

type GameStarted struct {
	RoomID      string `json:"room_id"`
	PlayerCount int    `json:"player_count"`
}

type TurnAdvanced struct {
	RoomID       string `json:"room_id"`
	PlayerID     string `json:"player_id"`
	Round        int    `json:"round"`
	CurrentImage string `json:"current_image"`
}

type GameFinished struct {
	RoomID     string `json:"room_id"`
	TotalTurns int    `json:"total_turns"`
}

type RoomClosed struct {
	RoomID string `json:"room_id"`
}
