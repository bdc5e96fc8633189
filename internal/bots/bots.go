// Package bots provides scripted deciders that play through the public
// Decider boundary only; they never reach into engine internals.
package bots

import (
	"context"
	"sort"

	"github.com/evanofslack/pyminion-sub000/internal/game"
)

// BigMoney is the classic benchmark strategy: play whatever actions it holds,
// play all treasures, and buy down a fixed priority list.
type BigMoney struct {
	// Priority is the buy list, most preferred first.
	Priority []*game.Card
}

// NewBigMoney returns a BigMoney decider with the standard
// Province > Gold > Silver buy list.
func NewBigMoney() *BigMoney {
	return &BigMoney{Priority: []*game.Card{game.Province, game.Gold, game.Silver}}
}

var _ game.Decider = (*BigMoney)(nil)

func (b *BigMoney) ActionPhaseDecision(ctx context.Context, g *game.Game, p *game.Player, valid []*game.Card) (*game.Card, error) {
	if len(valid) == 0 {
		return nil, nil
	}
	return valid[0], nil
}

func (b *BigMoney) TreasurePhaseDecision(ctx context.Context, g *game.Game, p *game.Player, valid []*game.Card) ([]*game.Card, error) {
	return valid, nil
}

func (b *BigMoney) BuyPhaseDecision(ctx context.Context, g *game.Game, p *game.Player, valid []*game.Card) (*game.Card, error) {
	for _, want := range b.Priority {
		for _, c := range valid {
			if c.Name == want.Name {
				return c, nil
			}
		}
	}
	return nil, nil
}

func (b *BigMoney) BinaryDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, relevant []*game.Card) (bool, error) {
	// Revealing reactions and taking optional bonuses is always worth it
	// for this strategy.
	return true, nil
}

func (b *BigMoney) DiscardDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, valid []*game.Card, min, max int) ([]*game.Card, error) {
	return pickWorst(valid, min, max), nil
}

func (b *BigMoney) TrashDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, valid []*game.Card, min, max int) ([]*game.Card, error) {
	// Only trash junk voluntarily.
	var junk []*game.Card
	for _, c := range valid {
		if c.Types.Has(game.TypeCurse) {
			junk = append(junk, c)
		}
	}
	if len(junk) > max {
		junk = junk[:max]
	}
	if len(junk) < min {
		return pickWorst(valid, min, max), nil
	}
	return junk, nil
}

func (b *BigMoney) GainDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, valid []*game.Card, min, max int) ([]*game.Card, error) {
	if len(valid) == 0 || max == 0 {
		return nil, nil
	}
	// Gain the most expensive option.
	best := valid[0]
	for _, c := range valid[1:] {
		if c.GetCost(p, g).Money > best.GetCost(p, g).Money {
			best = c
		}
	}
	return []*game.Card{best}, nil
}

func (b *BigMoney) TopdeckDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, valid []*game.Card, min, max int) ([]*game.Card, error) {
	if min == 0 || len(valid) == 0 {
		return nil, nil
	}
	picked := valid
	if len(picked) > min {
		picked = picked[:min]
	}
	return picked, nil
}

func (b *BigMoney) MultiPlayDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, c *game.Card) (bool, error) {
	return true, nil
}

// pickWorst orders cards by how little the strategy wants to keep them
// (dead Victory/Curse cards first, then cheapest) and takes between min and
// max of them, preferring to give up exactly the dead ones.
func pickWorst(valid []*game.Card, min, max int) []*game.Card {
	ordered := make([]*game.Card, len(valid))
	copy(ordered, valid)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := dead(ordered[i]), dead(ordered[j])
		if di != dj {
			return di
		}
		return ordered[i].Price.Money < ordered[j].Price.Money
	})

	n := 0
	for _, c := range ordered {
		if dead(c) {
			n++
		}
	}
	if n < min {
		n = min
	}
	if max >= 0 && n > max {
		n = max
	}
	return ordered[:n]
}

func dead(c *game.Card) bool {
	return c.Types.Has(game.TypeCurse) ||
		(c.Types.Has(game.TypeVictory) && !c.Types.Has(game.TypeAction) && !c.Types.Has(game.TypeTreasure))
}
