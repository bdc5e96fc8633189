package game

import (
	"errors"
	"fmt"

	"github.com/evanofslack/pyminion-sub000/internal/log"
)

// State holds a player's turn-scoped counters. Reset at the start of every
// turn and again during cleanup.
type State struct {
	Actions int
	Money   int
	Potions int
	Buys    int
}

// Player owns all of one player's containers and counters and exposes the
// generic operations every card effect is built from.
type Player struct {
	Name    string
	Decider Decider

	Deck        *CardStack
	DiscardPile *CardStack
	Hand        *CardStack
	Playmat     *CardStack

	State State

	// Cumulative counters.
	TurnsTaken    int
	Shuffles      int
	ActionsPlayed int // actions played this turn

	mats       map[string]*CardStack
	persistent map[string]int // playmat cards excluded from the cleanup sweep
}

// NewPlayer creates a player with empty containers and the given decider.
func NewPlayer(name string, decider Decider) *Player {
	return &Player{
		Name:        name,
		Decider:     decider,
		Deck:        NewCardStack(),
		DiscardPile: NewCardStack(),
		Hand:        NewCardStack(),
		Playmat:     NewCardStack(),
		mats:        make(map[string]*CardStack),
		persistent:  make(map[string]int),
	}
}

// Start re-initializes the player to the starting configuration and draws an
// opening hand of 5.
func (p *Player) Start(g *Game, startingDeck []*Card) error {
	p.Deck = NewCardStack(startingDeck...)
	p.DiscardPile = NewCardStack()
	p.Hand = NewCardStack()
	p.Playmat = NewCardStack()
	p.mats = make(map[string]*CardStack)
	p.persistent = make(map[string]int)
	p.State = State{Actions: 1, Buys: 1}
	p.TurnsTaken = 0
	p.Shuffles = 0
	p.ActionsPlayed = 0
	p.Deck.Shuffle(g.Rand())
	_, err := p.Draw(g, HandSize, nil)
	return err
}

// Mat returns the named set-aside mat, creating it on first use.
func (p *Player) Mat(name string) *CardStack {
	m, ok := p.mats[name]
	if !ok {
		m = NewCardStack()
		p.mats[name] = m
	}
	return m
}

// Draw moves up to n cards from the deck into dst (the hand when dst is nil).
// When the deck runs dry the discard pile is shuffled in and the on-shuffle
// hook fires; when both are empty the missing cards are simply not delivered.
func (p *Player) Draw(g *Game, n int, dst *CardStack) ([]*Card, error) {
	if dst == nil {
		dst = p.Hand
	}
	var drawn []*Card
	for i := 0; i < n; i++ {
		if p.Deck.Len() == 0 {
			if p.DiscardPile.Len() == 0 {
				break
			}
			p.DiscardPile.MoveTo(p.Deck)
			p.Deck.Shuffle(g.Rand())
			p.Shuffles++
			g.logEvent(log.NewShuffleEvent(g.Turn(), g.Phase().String(), p.Name, p.Deck.Len()))
			if err := g.Effects.FireTurnHooks(HookOnShuffle, g, p); err != nil {
				return drawn, err
			}
		}
		c := p.Deck.Pop()
		if c == nil {
			break
		}
		dst.Add(c)
		drawn = append(drawn, c)
		g.logEvent(log.NewDrawEvent(g.Turn(), g.Phase().String(), p.Name, c.Name))
		if err := g.Effects.FireCardHooks(HookOnDraw, g, p, c); err != nil {
			return drawn, err
		}
	}
	return drawn, nil
}

// Discard moves one matching card from hand to the discard pile and fires the
// on-discard hook. A card not in hand is a silent no-op; callers are expected
// to have validated membership through the decider contract.
func (p *Player) Discard(g *Game, c *Card) error {
	removed := p.Hand.Remove(c.Name)
	if removed == nil {
		return nil
	}
	p.DiscardPile.Add(removed)
	g.logEvent(log.NewDiscardEvent(g.Turn(), g.Phase().String(), p.Name, removed.Name))
	return g.Effects.FireCardHooks(HookOnDiscard, g, p, removed)
}

// Play locates a matching card in hand by name and plays it. Playing an
// Action with generic=true moves it to the playmat and spends an action;
// generic=false runs only the card-specific half (Throne-Room-style replays).
func (p *Player) Play(g *Game, target *Card, generic bool) error {
	if target == nil {
		return fmt.Errorf("%w: no card given", ErrCardNotFound)
	}
	if !p.Hand.Contains(target.Name) {
		return fmt.Errorf("%w: %s is not in hand", ErrCardNotFound, target.Name)
	}
	return p.ExactPlay(g, target, generic)
}

// ExactPlay plays a specific card reference not required to be in hand (used
// when an effect plays a card that was just revealed or set aside).
func (p *Player) ExactPlay(g *Game, c *Card, generic bool) error {
	switch {
	case c.Types.Has(TypeAction):
		return p.playAction(g, c, generic)
	case c.Types.Has(TypeTreasure):
		return p.playTreasure(g, c)
	default:
		return fmt.Errorf("%w: %s is not an Action or Treasure", ErrInvalidCardPlay, c.Name)
	}
}

// MultiPlay supports "play this card again" semantics. state threads an
// opaque accumulator across repeated invocations of the same copy; cards
// without a multi-step handler fall back to ExactPlay.
func (p *Player) MultiPlay(g *Game, c *Card, state any, generic bool) (any, error) {
	if c.MultiStep != nil {
		return c.MultiStep(g, p, state)
	}
	return state, p.ExactPlay(g, c, generic)
}

func (p *Player) playAction(g *Game, c *Card, generic bool) error {
	if generic {
		if p.State.Actions < 1 {
			return fmt.Errorf("%w: cannot play %s", ErrInsufficientActions, c.Name)
		}
		if removed := p.Hand.Remove(c.Name); removed != nil {
			p.Playmat.Add(removed)
		} else {
			p.Playmat.Add(c)
		}
		p.State.Actions--
	}
	p.ActionsPlayed++
	g.logEvent(log.NewPlayEvent(g.Turn(), g.Phase().String(), p.Name, c.Name))

	p.State.Actions += c.AddActions
	p.State.Money += c.AddMoney
	p.State.Buys += c.AddBuys
	if c.AddCards > 0 {
		if _, err := p.Draw(g, c.AddCards, nil); err != nil {
			return err
		}
	}
	if c.Effect != nil {
		if err := c.Effect(g, p); err != nil {
			return err
		}
	}
	if c.Types.Has(TypeDuration) && c.NextTurn != nil {
		p.scheduleDuration(g, c)
	}
	return g.Effects.FireCardHooks(HookOnPlay, g, p, c)
}

func (p *Player) playTreasure(g *Game, c *Card) error {
	if removed := p.Hand.Remove(c.Name); removed != nil {
		p.Playmat.Add(removed)
	} else {
		p.Playmat.Add(c)
	}
	p.State.Money += c.Money
	g.logEvent(log.NewPlayEvent(g.Turn(), g.Phase().String(), p.Name, c.Name))
	return g.Effects.FireCardHooks(HookOnPlay, g, p, c)
}

// scheduleDuration keeps the card on the playmat through cleanup and
// registers a one-shot turn-start hook that runs the card's next-turn half,
// releases the card, and unregisters itself. Each copy gets a unique
// registration name so two copies of the same card resolve independently.
func (p *Player) scheduleDuration(g *Game, c *Card) {
	name := hookName(c.Name)
	owner := p
	p.persistent[c.Name]++
	g.Effects.RegisterTurnHook(HookTurnStart, name, func(g *Game, tp *Player) error {
		if tp != owner {
			return nil
		}
		g.Effects.Unregister(HookTurnStart, name)
		owner.releasePersistent(c)
		return c.NextTurn(g, owner)
	})
}

func (p *Player) releasePersistent(c *Card) {
	if p.persistent[c.Name] > 0 {
		p.persistent[c.Name]--
		if p.persistent[c.Name] == 0 {
			delete(p.persistent, c.Name)
		}
	}
}

// Buy validates buys then money, gains the card from the supply into the
// discard pile, then fires the on-buy hook (which also fires on-gain).
func (p *Player) Buy(g *Game, c *Card) error {
	if p.State.Buys < 1 {
		return fmt.Errorf("%w: cannot buy %s", ErrInsufficientBuys, c.Name)
	}
	cost := c.GetCost(p, g)
	if p.State.Money < cost.Money || p.State.Potions < cost.Potions {
		return fmt.Errorf("%w: %s costs %s", ErrInsufficientMoney, c.Name, cost)
	}
	gained, err := g.Supply.GainCard(c)
	if err != nil {
		return err
	}
	p.State.Money -= cost.Money
	p.State.Potions -= cost.Potions
	p.State.Buys--
	p.DiscardPile.Add(gained)
	g.logEvent(log.NewBuyEvent(g.Turn(), g.Phase().String(), p.Name, gained.Name, cost.Money))
	if err := g.Effects.FireCardHooks(HookOnBuy, g, p, gained); err != nil {
		return err
	}
	return g.Effects.FireCardHooks(HookOnGain, g, p, gained)
}

// Gain takes one copy of the card from the supply into dst (the discard pile
// when dst is nil) and fires the on-gain hook.
func (p *Player) Gain(g *Game, c *Card, dst *CardStack) error {
	if dst == nil {
		dst = p.DiscardPile
	}
	gained, err := g.Supply.GainCard(c)
	if err != nil {
		return err
	}
	dst.Add(gained)
	g.logEvent(log.NewGainEvent(g.Turn(), g.Phase().String(), p.Name, gained.Name))
	return g.Effects.FireCardHooks(HookOnGain, g, p, gained)
}

// TryGain is Gain but swallows an empty pile: attacks that gain a card for
// every opponent must not abort because one pile ran out.
func (p *Player) TryGain(g *Game, c *Card, dst *CardStack) error {
	err := p.Gain(g, c, dst)
	if errors.Is(err, ErrEmptyPile) {
		return nil
	}
	return err
}

// Trash moves a matching card from src (the hand when src is nil) into the
// shared trash.
func (p *Player) Trash(g *Game, c *Card, src *CardStack) error {
	if src == nil {
		src = p.Hand
	}
	removed := src.Remove(c.Name)
	if removed == nil {
		return fmt.Errorf("%w: %s", ErrCardNotFound, c.Name)
	}
	g.Trash.Add(removed)
	g.logEvent(log.NewTrashEvent(g.Turn(), g.Phase().String(), p.Name, removed.Name))
	return nil
}

// Topdeck moves a matching card from src (the hand when src is nil) onto the
// top of the deck.
func (p *Player) Topdeck(g *Game, c *Card, src *CardStack) error {
	if src == nil {
		src = p.Hand
	}
	removed := src.Remove(c.Name)
	if removed == nil {
		return fmt.Errorf("%w: %s", ErrCardNotFound, c.Name)
	}
	p.Deck.Add(removed)
	g.logEvent(log.NewTopdeckEvent(g.Turn(), g.Phase().String(), p.Name, removed.Name))
	return nil
}

// StartTurn resets the turn state, bumps the turn counters, and fires the
// turn-start hooks. This is where one-shot next-turn bonuses registered by
// Duration cards fire and unregister themselves.
func (p *Player) StartTurn(g *Game) error {
	p.TurnsTaken++
	p.ActionsPlayed = 0
	p.State = State{Actions: 1, Buys: 1}
	return g.Effects.FireTurnHooks(HookTurnStart, g, p)
}

// StartCleanupPhase sweeps hand and playmat into the discard pile, draws a
// fresh hand, and resets the turn state. Duration cards still pending their
// next-turn effect stay on the playmat.
func (p *Player) StartCleanupPhase(g *Game) error {
	remaining := make(map[string]int, len(p.persistent))
	for name, n := range p.persistent {
		remaining[name] = n
	}
	var kept []*Card
	for _, c := range p.Playmat.Cards() {
		if remaining[c.Name] > 0 {
			remaining[c.Name]--
			kept = append(kept, c)
			continue
		}
		p.DiscardPile.Add(c)
	}
	p.Playmat.cards = kept
	p.Hand.MoveTo(p.DiscardPile)
	if _, err := p.Draw(g, HandSize, nil); err != nil {
		return err
	}
	p.State = State{Actions: 1, Buys: 1}
	return nil
}

// HandCards returns the cards in hand matching the given type filter, or the
// whole hand when types is zero.
func (p *Player) HandCards(types Type) []*Card {
	var cards []*Card
	for _, c := range p.Hand.Cards() {
		if types == 0 || c.Types.Has(types) {
			cards = append(cards, c)
		}
	}
	return cards
}

// AllCards returns every card the player owns across all containers.
func (p *Player) AllCards() []*Card {
	var all []*Card
	all = append(all, p.Deck.Cards()...)
	all = append(all, p.DiscardPile.Cards()...)
	all = append(all, p.Hand.Cards()...)
	all = append(all, p.Playmat.Cards()...)
	for _, m := range p.mats {
		all = append(all, m.Cards()...)
	}
	return all
}

// TotalCards returns the number of cards the player owns.
func (p *Player) TotalCards() int {
	n := p.Deck.Len() + p.DiscardPile.Len() + p.Hand.Len() + p.Playmat.Len()
	for _, m := range p.mats {
		n += m.Len()
	}
	return n
}

// Score sums the victory points of every Victory and Curse card the player
// owns. Never cached.
func (p *Player) Score() int {
	score := 0
	for _, c := range p.AllCards() {
		if c.Types.Has(TypeVictory) || c.Types.Has(TypeCurse) {
			score += c.VictoryPoints(p)
		}
	}
	return score
}

// DeckComposition returns the player's full collection as name → count.
func (p *Player) DeckComposition() map[string]int {
	comp := make(map[string]int)
	for _, c := range p.AllCards() {
		comp[c.Name]++
	}
	return comp
}

func (p *Player) String() string {
	return p.Name
}
