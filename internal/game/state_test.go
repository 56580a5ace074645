package game_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pnicewicz421/big-picture/internal/game"
)

func playerIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("player-%d", i)
	}
	return ids
}

func TestNewState(t *testing.T) {
	players := playerIDs(3)
	g := game.New("goal", "start", players, 3)

	if g.PlayerCount() != 3 {
		t.Errorf("player count = %d, want 3", g.PlayerCount())
	}
	if g.CurrentRound != 0 || g.CurrentTurnIndex != 0 {
		t.Errorf("fresh game at round %d turn %d, want 0/0", g.CurrentRound, g.CurrentTurnIndex)
	}
	if g.CurrentImage != "start" {
		t.Errorf("current image = %q, want starting image", g.CurrentImage)
	}
	current, ok := g.CurrentPlayer()
	if !ok || current != players[0] {
		t.Errorf("current player = %q/%v, want %q", current, ok, players[0])
	}
	if g.IsFinished() {
		t.Error("fresh game should not be finished")
	}
}

func TestTurnProgression(t *testing.T) {
	players := playerIDs(2)
	g := game.New("goal", "start", players, 2)

	g.RecordAction(game.Action{
		PlayerID:       players[0],
		Round:          0,
		OptionChosen:   0,
		Description:    "Add clouds",
		ResultingImage: "img1",
	})

	if g.CurrentTurnIndex != 1 || g.CurrentRound != 0 {
		t.Fatalf("after first turn at %d/%d, want turn 1 round 0", g.CurrentTurnIndex, g.CurrentRound)
	}
	if current, _ := g.CurrentPlayer(); current != players[1] {
		t.Errorf("current player = %q, want %q", current, players[1])
	}

	g.RecordAction(game.Action{
		PlayerID:       players[1],
		Round:          0,
		OptionChosen:   1,
		Description:    "Add trees",
		ResultingImage: "img2",
	})

	// Round wraps back to the first player.
	if g.CurrentTurnIndex != 0 || g.CurrentRound != 1 {
		t.Fatalf("after round at %d/%d, want turn 0 round 1", g.CurrentTurnIndex, g.CurrentRound)
	}
	if g.CurrentImage != "img2" {
		t.Errorf("current image = %q, want img2", g.CurrentImage)
	}
}

func TestFinishCondition(t *testing.T) {
	players := playerIDs(2)
	g := game.New("goal", "start", players, 2)

	for round := 0; round < 2; round++ {
		for i, p := range players {
			g.RecordAction(game.Action{
				PlayerID:       p,
				Round:          round,
				OptionChosen:   uint8(i),
				Description:    fmt.Sprintf("action %d round %d", i, round),
				ResultingImage: fmt.Sprintf("img_r%d_p%d", round, i),
			})
		}
	}

	if !g.IsFinished() {
		t.Error("game should be finished after all rounds")
	}
	if g.TotalTurns() != 4 {
		t.Errorf("total turns = %d, want 4", g.TotalTurns())
	}
	if _, ok := g.CurrentPlayer(); ok {
		t.Error("finished game should have no current player")
	}
}

func TestActionHistory(t *testing.T) {
	players := playerIDs(1)
	g := game.New("goal", "start", players, 1)

	g.RecordAction(game.Action{
		PlayerID:       players[0],
		Round:          0,
		OptionChosen:   2,
		Description:    "Change color",
		ResultingImage: "new_img",
	})

	if len(g.Actions) != 1 {
		t.Fatalf("history length = %d, want 1", len(g.Actions))
	}
	if g.Actions[0].Description != "Change color" {
		t.Errorf("history description = %q", g.Actions[0].Description)
	}
	if g.CurrentImage != "new_img" {
		t.Errorf("current image = %q, want new_img", g.CurrentImage)
	}

	// Single player: one action finishes the round.
	if g.CurrentRound != 1 {
		t.Errorf("round = %d, want 1", g.CurrentRound)
	}
}

func TestGenerateAssets(t *testing.T) {
	goal, objects := game.GenerateAssets(4)

	if goal == "" {
		t.Error("goal should not be empty")
	}
	if !strings.Contains(goal, "holding") {
		t.Errorf("goal %q should combine animal, object and location", goal)
	}
	if len(objects) != 4 {
		t.Fatalf("got %d starting objects, want 4", len(objects))
	}
	seen := make(map[string]bool)
	for _, o := range objects {
		if o == "" {
			t.Error("starting object should not be empty")
		}
		if seen[o] {
			t.Errorf("duplicate starting object %q", o)
		}
		seen[o] = true
	}
}

func TestGenerateModificationOptions(t *testing.T) {
	options := game.GenerateModificationOptions()
	if len(options) != 4 {
		t.Fatalf("got %d options, want 4", len(options))
	}
	seen := make(map[string]bool)
	for _, o := range options {
		if seen[o] {
			t.Errorf("duplicate option %q", o)
		}
		seen[o] = true
	}
}

func TestApplyModification(t *testing.T) {
	got := game.ApplyModification("A wizard cat", "wearing a top hat")
	if got != "A wizard cat wearing a top hat" {
		t.Errorf("ApplyModification = %q", got)
	}
}
