package channels

import (
	"log/slog"
	"sync"

	"github.com/pnicewicz421/big-picture/internal/events"
)

// event-based
// each room gets a Broadcaster that fans room lifecycle events out to every
// connected SSE client. Events is a single queue fed by the handlers after a
// successful mutation; listeners are keyed by player id.
type Broadcaster struct {
	RoomID    string
	Events    chan any
	Listeners map[string]chan<- events.SseEvent
	logger    *slog.Logger
	Mu        sync.RWMutex
	closed    bool
}

// GlobalRooms holds the Broadcaster of each live room.
type GlobalRooms struct {
	Mu sync.RWMutex
	// roomID -> broadcaster
	Rooms  map[string]*Broadcaster
	logger *slog.Logger
}

func NewGlobalRooms(logger *slog.Logger) *GlobalRooms {
	if logger == nil {
		logger = slog.Default()
	}
	return &GlobalRooms{
		Rooms:  make(map[string]*Broadcaster),
		logger: logger,
	}
}

func (gr *GlobalRooms) GetRoomByID(roomID string) *Broadcaster {
	gr.Mu.RLock()
	defer gr.Mu.RUnlock()
	return gr.Rooms[roomID]
}

// CreateRoom registers a broadcaster for a new room and starts its event
// loop.
func (gr *GlobalRooms) CreateRoom(roomID string) *Broadcaster {
	b := NewBroadcaster(roomID, gr.logger)
	gr.Mu.Lock()
	gr.Rooms[roomID] = b
	gr.Mu.Unlock()
	go b.Start()
	return b
}

// CloseRoom notifies listeners that the room is gone and tears the
// broadcaster down.
func (gr *GlobalRooms) CloseRoom(roomID string) {
	gr.Mu.Lock()
	b, ok := gr.Rooms[roomID]
	if ok {
		delete(gr.Rooms, roomID)
	}
	gr.Mu.Unlock()

	if !ok {
		return
	}

	b.Mu.Lock()
	b.closed = true
	select {
	case b.Events <- events.RoomClosed{RoomID: roomID}:
	default:
	}
	close(b.Events)
	b.Mu.Unlock()
}

// Publish forwards a domain event to the room's broadcaster, if any. A room
// without listeners simply drops events; polling GetRoomView stays the
// authoritative way to observe state.
func (gr *GlobalRooms) Publish(roomID string, event any) {
	b := gr.GetRoomByID(roomID)
	if b == nil {
		return
	}

	b.Mu.RLock()
	defer b.Mu.RUnlock()
	if b.closed {
		return
	}
	select {
	case b.Events <- event:
	default:
		gr.logger.Warn("event queue full, dropping event", "room_id", roomID)
	}
}

func NewBroadcaster(roomID string, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		RoomID:    roomID,
		Events:    make(chan any, 32),
		Listeners: make(map[string]chan<- events.SseEvent),
		logger:    logger,
	}
}

// Subscribe registers a listener channel for a player. The channel stays
// owned by the caller; Unsubscribe before closing it.
func (b *Broadcaster) Subscribe(playerID string, ch chan<- events.SseEvent) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	b.Listeners[playerID] = ch
}

func (b *Broadcaster) Unsubscribe(playerID string) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	delete(b.Listeners, playerID)
}

func (b *Broadcaster) Start() {
	for event := range b.Events {
		switch e := event.(type) {
		case events.PlayerJoined:
			b.dispatchEvent(events.SseEvent{EventType: events.PLAYER_JOINED, Data: e})
		case events.PlayerLeft:
			b.dispatchEvent(events.SseEvent{EventType: events.PLAYER_LEFT, Data: e})
		case events.PlayerRejoined:
			b.dispatchEvent(events.SseEvent{EventType: events.PLAYER_REJOINED, Data: e})
		case events.GameStarted:
			b.dispatchEvent(events.SseEvent{EventType: events.GAME_STARTED, Data: e})
		case events.TurnAdvanced:
			b.dispatchEvent(events.SseEvent{EventType: events.TURN_ADVANCED, Data: e})
		case events.GameFinished:
			b.dispatchEvent(events.SseEvent{EventType: events.GAME_FINISHED, Data: e})
		case events.RoomClosed:
			b.dispatchEvent(events.SseEvent{EventType: events.ROOM_CLOSED, Data: e})
		default:
			b.logger.Warn("unknown event type", "room_id", b.RoomID, "event", event)
		}
	}
}

func (b *Broadcaster) dispatchEvent(event events.SseEvent) {
	b.Mu.RLock()
	defer b.Mu.RUnlock()

	for playerID, listener := range b.Listeners {
		select {
		case listener <- event:
		default:
			// Channel is full or closed, log but don't block
			b.logger.Warn("failed to send event to listener", "player_id", playerID, "room_id", b.RoomID)
		}
	}
}
