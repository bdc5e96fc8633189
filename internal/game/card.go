package game

import (
	"fmt"
	"strings"
)

// Type is a set of card kind tags. A card may carry several tags at once
// (e.g. Action|Attack).
type Type uint16

const (
	TypeTreasure Type = 1 << iota
	TypeVictory
	TypeAction
	TypeAttack
	TypeReaction
	TypeCurse
	TypeDuration
)

// Has reports whether every tag in k is present.
func (t Type) Has(k Type) bool {
	return t&k == k
}

func (t Type) String() string {
	var tags []string
	if t.Has(TypeTreasure) {
		tags = append(tags, "Treasure")
	}
	if t.Has(TypeVictory) {
		tags = append(tags, "Victory")
	}
	if t.Has(TypeAction) {
		tags = append(tags, "Action")
	}
	if t.Has(TypeAttack) {
		tags = append(tags, "Attack")
	}
	if t.Has(TypeReaction) {
		tags = append(tags, "Reaction")
	}
	if t.Has(TypeCurse) {
		tags = append(tags, "Curse")
	}
	if t.Has(TypeDuration) {
		tags = append(tags, "Duration")
	}
	return strings.Join(tags, "/")
}

// Cost is the price of a card: money plus an optional secondary currency.
type Cost struct {
	Money   int
	Potions int
}

func (c Cost) String() string {
	if c.Potions > 0 {
		return fmt.Sprintf("$%d %dP", c.Money, c.Potions)
	}
	return fmt.Sprintf("$%d", c.Money)
}

// Card is an immutable card definition. Every copy of a card in a game refers
// to the same shared value; equality is by name, never by a per-copy id.
//
// Which fields apply is decided by the kind tags: Money for Treasures, the
// score fields for Victory/Curse cards, the generic bonuses and Effect for
// Actions. Duration cards additionally set NextTurn, which is registered as a
// turn-start hook when the card is played.
type Card struct {
	Name  string
	Price Cost
	Types Type

	// Treasure: money produced when played.
	Money int

	// Victory/Curse: either a fixed point value or a dynamic scoring
	// function over the player's full collection.
	Points int
	Score  func(p *Player) int

	// Action: generic bonuses applied before the specific effect.
	AddActions int
	AddCards   int
	AddMoney   int
	AddBuys    int

	// Action: the card-specific effect, run after the generic bonuses.
	Effect func(g *Game, p *Player) error

	// Duration: scheduled when the card is played, fires at the start of the
	// owner's next turn. The engine keeps the card on the playmat until then.
	NextTurn func(g *Game, p *Player) error

	// MultiStep supports "play this card again" semantics. The opaque state
	// threads an accumulator across repeated invocations of the same copy.
	MultiStep func(g *Game, p *Player, state any) (any, error)

	// BlocksAttacks: while this card is in play, its owner is unaffected by
	// other players' Attack cards.
	BlocksAttacks bool
}

func (c *Card) String() string {
	return c.Name
}

// GetCost returns the card's effective cost for the given player and game,
// reflecting any active cost reduction and clamped at zero.
func (c *Card) GetCost(p *Player, g *Game) Cost {
	cost := c.Price
	if g != nil {
		cost.Money -= g.CostReduction()
	}
	if cost.Money < 0 {
		cost.Money = 0
	}
	return cost
}

// VictoryPoints computes the card's score for the given player. Recomputed on
// every call; deck composition changes between calls.
func (c *Card) VictoryPoints(p *Player) int {
	if c.Score != nil {
		return c.Score(p)
	}
	return c.Points
}
