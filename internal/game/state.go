package game

// DefaultMaxRounds is the number of rounds a game runs when the caller does
// not ask for anything else. Each player acts once per round.
const DefaultMaxRounds = 3

// State tracks an active game: the goal image, the current image, turn order
// and the full action history.
type State struct {
	GoalImage        string   `json:"goal_image"`
	StartingImage    string   `json:"starting_image"`
	CurrentImage     string   `json:"current_image"`
	PlayersInOrder   []string `json:"players_in_order"`
	CurrentTurnIndex int      `json:"current_turn_index"`
	MaxRounds        int      `json:"max_rounds"`
	CurrentRound     int      `json:"current_round"`
	Actions          []Action `json:"actions"`
}

// Action is a single player turn: the modification option they chose and the
// image it produced.
type Action struct {
	PlayerID       string `json:"player_id"`
	Round          int    `json:"round"`
	OptionChosen   uint8  `json:"option_chosen"`
	Description    string `json:"description"`
	ResultingImage string `json:"resulting_image"`
}

// New creates the state for a freshly started game. Turn order follows the
// players slice, which callers build from room join order.
func New(goalImage, startingImage string, players []string, maxRounds int) *State {
	return &State{
		GoalImage:      goalImage,
		StartingImage:  startingImage,
		CurrentImage:   startingImage,
		PlayersInOrder: players,
		MaxRounds:      maxRounds,
	}
}

// CurrentPlayer returns the id of the player whose turn it is. The second
// return value is false once the game has finished or when there are no
// players.
func (s *State) CurrentPlayer() (string, bool) {
	if s.IsFinished() || s.CurrentTurnIndex >= len(s.PlayersInOrder) {
		return "", false
	}
	return s.PlayersInOrder[s.CurrentTurnIndex], true
}

// RecordAction appends an action to the history, updates the current image
// and advances to the next turn.
func (s *State) RecordAction(a Action) {
	s.CurrentImage = a.ResultingImage
	s.Actions = append(s.Actions, a)
	s.advanceTurn()
}

func (s *State) advanceTurn() {
	s.CurrentTurnIndex++

	// Wrapped past the last player: a new round begins.
	if s.CurrentTurnIndex >= len(s.PlayersInOrder) {
		s.CurrentTurnIndex = 0
		s.CurrentRound++
	}
}

// IsFinished reports whether the game has played out all of its rounds.
func (s *State) IsFinished() bool {
	return s.CurrentRound >= s.MaxRounds
}

// TotalTurns returns the number of turns taken so far.
func (s *State) TotalTurns() int {
	return len(s.Actions)
}

// PlayerCount returns the number of players in turn order.
func (s *State) PlayerCount() int {
	return len(s.PlayersInOrder)
}
