package game

import (
	"fmt"

	"github.com/evanofslack/pyminion-sub000/internal/log"
)

// Basic cards present in every game. Cards are value-identical shared
// singletons: every Copper in every pile, hand, and deck is this one object.

var (
	Copper = &Card{Name: "Copper", Price: Cost{Money: 0}, Types: TypeTreasure, Money: 1}
	Silver = &Card{Name: "Silver", Price: Cost{Money: 3}, Types: TypeTreasure, Money: 2}
	Gold   = &Card{Name: "Gold", Price: Cost{Money: 6}, Types: TypeTreasure, Money: 3}

	Estate   = &Card{Name: "Estate", Price: Cost{Money: 2}, Types: TypeVictory, Points: 1}
	Duchy    = &Card{Name: "Duchy", Price: Cost{Money: 5}, Types: TypeVictory, Points: 3}
	Province = &Card{Name: "Province", Price: Cost{Money: 8}, Types: TypeVictory, Points: 6}

	Curse = &Card{Name: "Curse", Price: Cost{Money: 0}, Types: TypeCurse, Points: -1}
)

// Kingdom cards.

var Cellar = &Card{
	Name: "Cellar", Price: Cost{Money: 2}, Types: TypeAction,
	AddActions: 1,
	Effect: func(g *Game, p *Player) error {
		valid := p.HandCards(0)
		if len(valid) == 0 {
			return nil
		}
		chosen, err := p.Decider.DiscardDecision(g.Context(), g, p,
			"Discard any number of cards, then draw that many", valid, 0, len(valid))
		if err != nil {
			return err
		}
		if err := validateSelection(valid, chosen, 0, len(valid)); err != nil {
			return err
		}
		for _, c := range chosen {
			if err := p.Discard(g, c); err != nil {
				return err
			}
		}
		_, err = p.Draw(g, len(chosen), nil)
		return err
	},
}

var Chapel = &Card{
	Name: "Chapel", Price: Cost{Money: 2}, Types: TypeAction,
	Effect: func(g *Game, p *Player) error {
		valid := p.HandCards(0)
		if len(valid) == 0 {
			return nil
		}
		max := 4
		if len(valid) < max {
			max = len(valid)
		}
		chosen, err := p.Decider.TrashDecision(g.Context(), g, p,
			"Trash up to 4 cards from your hand", valid, 0, max)
		if err != nil {
			return err
		}
		if err := validateSelection(valid, chosen, 0, max); err != nil {
			return err
		}
		for _, c := range chosen {
			if err := p.Trash(g, c, nil); err != nil {
				return err
			}
		}
		return nil
	},
}

var Moat = &Card{
	Name: "Moat", Price: Cost{Money: 2}, Types: TypeAction | TypeReaction,
	AddCards: 2,
}

var Lighthouse = &Card{
	Name: "Lighthouse", Price: Cost{Money: 2}, Types: TypeAction | TypeDuration,
	AddActions: 1, AddMoney: 1,
	BlocksAttacks: true,
	NextTurn: func(g *Game, p *Player) error {
		p.State.Money++
		return nil
	},
}

var Harbinger = &Card{
	Name: "Harbinger", Price: Cost{Money: 3}, Types: TypeAction,
	AddCards: 1, AddActions: 1,
	Effect: func(g *Game, p *Player) error {
		valid := p.DiscardPile.Cards()
		if len(valid) == 0 {
			return nil
		}
		chosen, err := p.Decider.TopdeckDecision(g.Context(), g, p,
			"Put a card from your discard pile onto your deck", valid, 0, 1)
		if err != nil {
			return err
		}
		if err := validateSelection(valid, chosen, 0, 1); err != nil {
			return err
		}
		if len(chosen) == 0 {
			return nil
		}
		return p.Topdeck(g, chosen[0], p.DiscardPile)
	},
}

var Merchant = &Card{
	Name: "Merchant", Price: Cost{Money: 3}, Types: TypeAction,
	AddCards: 1, AddActions: 1,
	Effect: func(g *Game, p *Player) error {
		// The first Silver played this turn is worth an extra coin. The
		// on-play hook removes itself when it fires; the turn-end hook
		// removes whatever is left either way.
		name := hookName("Merchant")
		owner := p
		g.Effects.RegisterCardHook(HookOnPlay, name, func(g *Game, tp *Player, c *Card) error {
			if tp != owner || c.Name != "Silver" {
				return nil
			}
			tp.State.Money++
			g.Effects.Unregister(HookOnPlay, name)
			return nil
		})
		g.Effects.RegisterTurnHook(HookTurnEnd, name, func(g *Game, tp *Player) error {
			g.Effects.Unregister(HookOnPlay, name)
			g.Effects.Unregister(HookTurnEnd, name)
			return nil
		})
		return nil
	},
}

var Village = &Card{
	Name: "Village", Price: Cost{Money: 3}, Types: TypeAction,
	AddCards: 1, AddActions: 2,
}

var Workshop = &Card{
	Name: "Workshop", Price: Cost{Money: 3}, Types: TypeAction,
	Effect: func(g *Game, p *Player) error {
		var valid []*Card
		for _, c := range g.Supply.AvailableCards() {
			if c.GetCost(p, g).Money <= 4 {
				valid = append(valid, c)
			}
		}
		if len(valid) == 0 {
			return nil
		}
		chosen, err := p.Decider.GainDecision(g.Context(), g, p,
			"Gain a card costing up to $4", valid, 1, 1)
		if err != nil {
			return err
		}
		if err := validateSelection(valid, chosen, 1, 1); err != nil {
			return err
		}
		return p.Gain(g, chosen[0], nil)
	},
}

var Woodcutter = &Card{
	Name: "Woodcutter", Price: Cost{Money: 3}, Types: TypeAction,
	AddBuys: 1, AddMoney: 2,
}

var Bureaucrat = &Card{
	Name: "Bureaucrat", Price: Cost{Money: 4}, Types: TypeAction | TypeAttack,
	Effect: func(g *Game, p *Player) error {
		if err := p.TryGain(g, Silver, p.Deck); err != nil {
			return err
		}
		return g.AttackOpponents(p, func(op *Player) error {
			victories := op.HandCards(TypeVictory)
			if len(victories) == 0 {
				for _, c := range op.Hand.Cards() {
					g.logEvent(log.NewRevealEvent(g.Turn(), g.Phase().String(), op.Name, c.Name))
				}
				return nil
			}
			chosen, err := op.Decider.TopdeckDecision(g.Context(), g, op,
				"Put a Victory card from your hand onto your deck", victories, 1, 1)
			if err != nil {
				return err
			}
			if err := validateSelection(victories, chosen, 1, 1); err != nil {
				return err
			}
			return op.Topdeck(g, chosen[0], nil)
		})
	},
}

var Gardens = &Card{
	Name: "Gardens", Price: Cost{Money: 4}, Types: TypeVictory,
	Score: func(p *Player) int {
		return p.TotalCards() / 10
	},
}

var Militia = &Card{
	Name: "Militia", Price: Cost{Money: 4}, Types: TypeAction | TypeAttack,
	AddMoney: 2,
	Effect: func(g *Game, p *Player) error {
		return g.AttackOpponents(p, func(op *Player) error {
			excess := op.Hand.Len() - 3
			if excess <= 0 {
				return nil
			}
			valid := op.HandCards(0)
			chosen, err := op.Decider.DiscardDecision(g.Context(), g, op,
				"Discard down to 3 cards in hand", valid, excess, excess)
			if err != nil {
				return err
			}
			if err := validateSelection(valid, chosen, excess, excess); err != nil {
				return err
			}
			for _, c := range chosen {
				if err := op.Discard(g, c); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var Moneylender = &Card{
	Name: "Moneylender", Price: Cost{Money: 4}, Types: TypeAction,
	Effect: func(g *Game, p *Player) error {
		if !p.Hand.Contains("Copper") {
			return nil
		}
		yes, err := p.Decider.BinaryDecision(g.Context(), g, p,
			"Trash a Copper from your hand for +$3?", []*Card{Copper})
		if err != nil {
			return err
		}
		if !yes {
			return nil
		}
		if err := p.Trash(g, Copper, nil); err != nil {
			return err
		}
		p.State.Money += 3
		return nil
	},
}

var Smithy = &Card{
	Name: "Smithy", Price: Cost{Money: 4}, Types: TypeAction,
	AddCards: 3,
}

var ThroneRoom = &Card{
	Name: "Throne Room", Price: Cost{Money: 4}, Types: TypeAction,
	Effect: func(g *Game, p *Player) error {
		valid := p.HandCards(TypeAction)
		if len(valid) == 0 {
			return nil
		}
		choice, err := p.Decider.ActionPhaseDecision(g.Context(), g, p, valid)
		if err != nil {
			return err
		}
		if err := validateChoice(valid, choice); err != nil {
			return err
		}
		if choice == nil {
			return nil
		}
		// The chosen card is put into play once, then resolved twice with
		// only its specific half; no extra action is spent.
		if removed := p.Hand.Remove(choice.Name); removed != nil {
			p.Playmat.Add(removed)
		}
		var state any
		for i := 0; i < 2; i++ {
			state, err = p.MultiPlay(g, choice, state, false)
			if err != nil {
				return err
			}
		}
		return nil
	},
}

var Bridge = &Card{
	Name: "Bridge", Price: Cost{Money: 4}, Types: TypeAction,
	AddBuys: 1, AddMoney: 1,
	Effect: func(g *Game, p *Player) error {
		g.ReduceCost(1)
		return nil
	},
}

var CouncilRoom = &Card{
	Name: "Council Room", Price: Cost{Money: 5}, Types: TypeAction,
	AddCards: 4, AddBuys: 1,
	Effect: func(g *Game, p *Player) error {
		for _, op := range g.Opponents(p) {
			if _, err := op.Draw(g, 1, nil); err != nil {
				return err
			}
		}
		return nil
	},
}

var Festival = &Card{
	Name: "Festival", Price: Cost{Money: 5}, Types: TypeAction,
	AddActions: 2, AddBuys: 1, AddMoney: 2,
}

var Laboratory = &Card{
	Name: "Laboratory", Price: Cost{Money: 5}, Types: TypeAction,
	AddCards: 2, AddActions: 1,
}

var Market = &Card{
	Name: "Market", Price: Cost{Money: 5}, Types: TypeAction,
	AddCards: 1, AddActions: 1, AddBuys: 1, AddMoney: 1,
}

var MerchantShip = &Card{
	Name: "Merchant Ship", Price: Cost{Money: 5}, Types: TypeAction | TypeDuration,
	AddMoney: 2,
	NextTurn: func(g *Game, p *Player) error {
		p.State.Money += 2
		return nil
	},
}

var Witch = &Card{
	Name: "Witch", Price: Cost{Money: 5}, Types: TypeAction | TypeAttack,
	AddCards: 2,
	Effect: func(g *Game, p *Player) error {
		return g.AttackOpponents(p, func(op *Player) error {
			// An empty Curse pile skips this opponent without aborting the
			// attack for the rest.
			return op.TryGain(g, Curse, nil)
		})
	},
}

// Expansion sets.

var BaseSet = Expansion{
	Name: "Base",
	Cards: []*Card{
		Cellar, Chapel, Moat, Harbinger, Merchant, Village, Workshop,
		Woodcutter, Bureaucrat, Gardens, Militia, Moneylender, Smithy,
		ThroneRoom, CouncilRoom, Festival, Laboratory, Market, Witch,
	},
}

var IntrigueSet = Expansion{
	Name:  "Intrigue",
	Cards: []*Card{Bridge},
}

var SeasideSet = Expansion{
	Name:  "Seaside",
	Cards: []*Card{Lighthouse, MerchantShip},
}

// CardRegistry maps card names to their shared singletons.
var CardRegistry = map[string]*Card{}

func init() {
	all := []*Card{Copper, Silver, Gold, Estate, Duchy, Province, Curse}
	all = append(all, BaseSet.Cards...)
	all = append(all, IntrigueSet.Cards...)
	all = append(all, SeasideSet.Cards...)
	for _, c := range all {
		CardRegistry[c.Name] = c
	}
}

// LookupCard looks up a card by name. Panics if the card is not registered.
func LookupCard(name string) *Card {
	c, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return c
}
