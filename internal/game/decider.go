package game

import (
	"context"
	"fmt"
)

// Decider is the interface both human and bot players implement. It is the
// sole boundary between the engine and an external actor: every choice the
// engine offers is parameterized with the valid set of cards and, where more
// than one card may be picked, a (min, max) cardinality constraint.
//
// The engine validates every returned selection against the valid set and the
// bounds. A violation is an engine-level contract failure, not a game-rule
// exception.
type Decider interface {
	// ActionPhaseDecision picks an Action card to play, or nil to end the
	// action phase early.
	ActionPhaseDecision(ctx context.Context, g *Game, p *Player, valid []*Card) (*Card, error)

	// TreasurePhaseDecision picks zero or more Treasure cards to play in one
	// batch.
	TreasurePhaseDecision(ctx context.Context, g *Game, p *Player, valid []*Card) ([]*Card, error)

	// BuyPhaseDecision picks a card to buy, or nil to stop buying.
	BuyPhaseDecision(ctx context.Context, g *Game, p *Player, valid []*Card) (*Card, error)

	// BinaryDecision answers a yes/no question (e.g. "reveal Moat?").
	BinaryDecision(ctx context.Context, g *Game, p *Player, prompt string, relevant []*Card) (bool, error)

	// DiscardDecision selects cards to discard.
	DiscardDecision(ctx context.Context, g *Game, p *Player, prompt string, valid []*Card, min, max int) ([]*Card, error)

	// TrashDecision selects cards to trash.
	TrashDecision(ctx context.Context, g *Game, p *Player, prompt string, valid []*Card, min, max int) ([]*Card, error)

	// GainDecision selects cards to gain from the supply.
	GainDecision(ctx context.Context, g *Game, p *Player, prompt string, valid []*Card, min, max int) ([]*Card, error)

	// TopdeckDecision selects cards to put on top of the deck.
	TopdeckDecision(ctx context.Context, g *Game, p *Player, prompt string, valid []*Card, min, max int) ([]*Card, error)

	// MultiPlayDecision answers whether to play the given card again.
	MultiPlayDecision(ctx context.Context, g *Game, p *Player, prompt string, c *Card) (bool, error)
}

// validateSelection checks that chosen is a multiset-subset of valid and that
// its size respects the cardinality bounds. max < 0 means unbounded.
func validateSelection(valid, chosen []*Card, min, max int) error {
	if len(chosen) < min {
		return fmt.Errorf("%w: selected %d cards, need at least %d", ErrInvalidBotImplementation, len(chosen), min)
	}
	if max >= 0 && len(chosen) > max {
		return fmt.Errorf("%w: selected %d cards, at most %d allowed", ErrInvalidBotImplementation, len(chosen), max)
	}
	remaining := make(map[string]int, len(valid))
	for _, c := range valid {
		remaining[c.Name]++
	}
	for _, c := range chosen {
		if c == nil {
			return fmt.Errorf("%w: nil card in selection", ErrInvalidBotImplementation)
		}
		if remaining[c.Name] == 0 {
			return fmt.Errorf("%w: %s is not a valid choice", ErrInvalidBotImplementation, c.Name)
		}
		remaining[c.Name]--
	}
	return nil
}

// validateChoice checks a single optional pick against the valid set.
// A nil choice is always legal; it means "decline".
func validateChoice(valid []*Card, chosen *Card) error {
	if chosen == nil {
		return nil
	}
	return validateSelection(valid, []*Card{chosen}, 0, 1)
}
