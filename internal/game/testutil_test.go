package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/evanofslack/pyminion-sub000/internal/log"
)

// scriptedDecider follows predefined scripts of choices, used in tests to
// deterministically drive the game. Unscripted choices fall back to safe
// defaults: decline optional picks, play all treasures, answer no.
type scriptedDecider struct {
	t *testing.T

	actions   []string // card names; "" declines
	actionPos int

	buys   []string // card names; "" declines
	buyPos int

	binary    []bool
	binaryPos int

	// picks is shared by discard/trash/gain/topdeck decisions in the order
	// they are requested.
	picks   [][]string
	pickPos int

	multi    []bool
	multiPos int
}

func newScripted(t *testing.T) *scriptedDecider {
	return &scriptedDecider{t: t}
}

func (d *scriptedDecider) addActions(names ...string) *scriptedDecider {
	d.actions = append(d.actions, names...)
	return d
}

func (d *scriptedDecider) addBuys(names ...string) *scriptedDecider {
	d.buys = append(d.buys, names...)
	return d
}

func (d *scriptedDecider) addBinary(answers ...bool) *scriptedDecider {
	d.binary = append(d.binary, answers...)
	return d
}

func (d *scriptedDecider) addPick(names ...string) *scriptedDecider {
	d.picks = append(d.picks, names)
	return d
}

func (d *scriptedDecider) addMulti(answers ...bool) *scriptedDecider {
	d.multi = append(d.multi, answers...)
	return d
}

func findByName(valid []*Card, name string) *Card {
	for _, c := range valid {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (d *scriptedDecider) nextChoice(script []string, pos *int, valid []*Card) *Card {
	if *pos >= len(script) {
		return nil
	}
	name := script[*pos]
	*pos++
	if name == "" {
		return nil
	}
	c := findByName(valid, name)
	if c == nil {
		d.t.Fatalf("scripted choice %q not in valid set %v", name, valid)
	}
	return c
}

func (d *scriptedDecider) ActionPhaseDecision(ctx context.Context, g *Game, p *Player, valid []*Card) (*Card, error) {
	return d.nextChoice(d.actions, &d.actionPos, valid), nil
}

func (d *scriptedDecider) TreasurePhaseDecision(ctx context.Context, g *Game, p *Player, valid []*Card) ([]*Card, error) {
	return valid, nil
}

func (d *scriptedDecider) BuyPhaseDecision(ctx context.Context, g *Game, p *Player, valid []*Card) (*Card, error) {
	return d.nextChoice(d.buys, &d.buyPos, valid), nil
}

func (d *scriptedDecider) BinaryDecision(ctx context.Context, g *Game, p *Player, prompt string, relevant []*Card) (bool, error) {
	if d.binaryPos >= len(d.binary) {
		return false, nil
	}
	ans := d.binary[d.binaryPos]
	d.binaryPos++
	return ans, nil
}

func (d *scriptedDecider) pick(valid []*Card, min, max int) ([]*Card, error) {
	if d.pickPos >= len(d.picks) {
		// Default: the first min candidates.
		if min > len(valid) {
			min = len(valid)
		}
		return valid[:min], nil
	}
	names := d.picks[d.pickPos]
	d.pickPos++

	// Track remaining candidates so duplicates resolve to distinct copies.
	remaining := make([]*Card, len(valid))
	copy(remaining, valid)
	var chosen []*Card
	for _, name := range names {
		found := false
		for i, c := range remaining {
			if c.Name == name {
				chosen = append(chosen, c)
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("scripted pick %q not in candidates %v", name, valid)
		}
	}
	return chosen, nil
}

func (d *scriptedDecider) DiscardDecision(ctx context.Context, g *Game, p *Player, prompt string, valid []*Card, min, max int) ([]*Card, error) {
	return d.pick(valid, min, max)
}

func (d *scriptedDecider) TrashDecision(ctx context.Context, g *Game, p *Player, prompt string, valid []*Card, min, max int) ([]*Card, error) {
	return d.pick(valid, min, max)
}

func (d *scriptedDecider) GainDecision(ctx context.Context, g *Game, p *Player, prompt string, valid []*Card, min, max int) ([]*Card, error) {
	return d.pick(valid, min, max)
}

func (d *scriptedDecider) TopdeckDecision(ctx context.Context, g *Game, p *Player, prompt string, valid []*Card, min, max int) ([]*Card, error) {
	return d.pick(valid, min, max)
}

func (d *scriptedDecider) MultiPlayDecision(ctx context.Context, g *Game, p *Player, prompt string, c *Card) (bool, error) {
	if d.multiPos >= len(d.multi) {
		return true, nil
	}
	ans := d.multi[d.multiPos]
	d.multiPos++
	return ans, nil
}

// --- game harness helpers ---

// newTestGame builds a seeded game over the full expansion pool with a memory
// event log, without starting any player.
func newTestGame(t *testing.T, players ...*Player) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	g, err := NewGame(Config{
		Expansions: []Expansion{BaseSet, IntrigueSet, SeasideSet},
		Kingdom: []string{
			"Cellar", "Moat", "Village", "Smithy", "Militia", "Witch",
			"Market", "Throne Room", "Gardens", "Bridge", "Merchant Ship",
			"Lighthouse", "Merchant", "Harbinger", "Bureaucrat", "Moneylender",
			"Workshop", "Chapel", "Council Room", "Laboratory", "Festival",
			"Woodcutter",
		},
		Seed:   42,
		Logger: logger,
	}, players...)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, logger
}

// startPlayer shuffles in the default starting deck and draws the opening hand.
func startPlayer(t *testing.T, g *Game, p *Player) {
	t.Helper()
	if err := p.Start(g, DefaultStartingDeck()); err != nil {
		t.Fatalf("start player %s: %v", p.Name, err)
	}
}

// giveHand replaces the player's hand with the given cards.
func giveHand(p *Player, cards ...*Card) {
	p.Hand = NewCardStack(cards...)
}
