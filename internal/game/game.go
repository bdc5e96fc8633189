package game

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/evanofslack/pyminion-sub000/internal/log"
)

const (
	// HandSize is the number of cards drawn for a fresh hand.
	HandSize = 5

	// emptyPilesToEnd is the number of depleted piles that ends the game.
	emptyPilesToEnd = 3
)

type Phase int

const (
	PhaseNone Phase = iota
	PhaseAction
	PhaseTreasure
	PhaseBuy
	PhaseCleanup
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAction:
		return "Action Phase"
	case PhaseTreasure:
		return "Treasure Phase"
	case PhaseBuy:
		return "Buy Phase"
	case PhaseCleanup:
		return "Cleanup Phase"
	case PhaseGameOver:
		return "Game Over"
	default:
		return "None"
	}
}

// Game owns the supply, the shared trash, the ordered player list, and the
// effect registry, and drives players through the turn phases.
type Game struct {
	ID      string
	Supply  *Supply
	Trash   *CardStack
	Players []*Player
	Effects *Registry
	Logger  log.EventLogger

	ctx           context.Context
	rand          *rand.Rand
	turn          int // total turns taken across all players, 1-based
	current       int // index of the turn player
	phase         Phase
	costReduction int
	maxTurns      int
	startingDeck  []*Card
	over          bool
}

// Rand returns the game's seeded RNG. All shuffling goes through it so games
// are reproducible.
func (g *Game) Rand() *rand.Rand {
	return g.rand
}

// Context returns the context Game.Play was invoked with.
func (g *Game) Context() context.Context {
	return g.ctx
}

// Turn returns the total turn counter.
func (g *Game) Turn() int {
	return g.turn
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.current]
}

// Opponents returns the other players in turn order, starting with the player
// to p's left.
func (g *Game) Opponents(p *Player) []*Player {
	idx := 0
	for i, other := range g.Players {
		if other == p {
			idx = i
			break
		}
	}
	var ops []*Player
	for i := 1; i < len(g.Players); i++ {
		ops = append(ops, g.Players[(idx+i)%len(g.Players)])
	}
	return ops
}

// CostReduction returns the active cost reduction for this turn.
func (g *Game) CostReduction() int {
	return g.costReduction
}

// ReduceCost lowers the cost of every card by n for the rest of the turn.
func (g *Game) ReduceCost(n int) {
	g.costReduction += n
}

func (g *Game) logEvent(e log.GameEvent) {
	if g.Logger != nil {
		g.Logger.Log(e)
	}
}

// AttackOpponents runs fn against every opponent of the attacker, skipping
// opponents protected by a card in play and opponents that reveal a Reaction
// from hand. One opponent's failure does not reach the others only if fn
// itself swallows it; rule failures fn does not anticipate propagate.
func (g *Game) AttackOpponents(attacker *Player, fn func(op *Player) error) error {
	for _, op := range g.Opponents(attacker) {
		if g.attackBlocked(op) {
			continue
		}
		blocked, err := g.offerReaction(op)
		if err != nil {
			return err
		}
		if blocked {
			continue
		}
		if err := fn(op); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) attackBlocked(op *Player) bool {
	for _, c := range op.Playmat.Cards() {
		if c.BlocksAttacks {
			return true
		}
	}
	return false
}

func (g *Game) offerReaction(op *Player) (bool, error) {
	for _, c := range op.HandCards(TypeReaction) {
		prompt := fmt.Sprintf("Reveal %s to block the attack?", c.Name)
		yes, err := op.Decider.BinaryDecision(g.ctx, g, op, prompt, []*Card{c})
		if err != nil {
			return false, err
		}
		if yes {
			g.logEvent(log.NewRevealEvent(g.turn, g.phase.String(), op.Name, c.Name))
			return true, nil
		}
	}
	return false, nil
}

// IsOver reports whether the game-end condition holds: the Province pile is
// empty, or at least three piles of any kind are.
func (g *Game) IsOver() bool {
	if n, err := g.Supply.PileLength("Province"); err == nil && n == 0 {
		return true
	}
	return g.Supply.NumEmptyPiles() >= emptyPilesToEnd
}

// Play runs a full game to completion and returns the result.
func (g *Game) Play(ctx context.Context) (*Result, error) {
	g.ctx = ctx

	for _, p := range g.Players {
		if err := p.Start(g, g.startingDeck); err != nil {
			return nil, err
		}
	}

	for !g.over {
		if g.turn >= g.maxTurns {
			break
		}
		if err := g.runTurn(g.CurrentPlayer()); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.IsOver() {
			g.over = true
			break
		}
		g.current = (g.current + 1) % len(g.Players)
	}

	g.phase = PhaseGameOver
	return g.finish(), nil
}

func (g *Game) runTurn(p *Player) error {
	g.turn++
	g.logEvent(log.NewTurnEvent(g.turn, p.Name, p.TurnsTaken+1))

	if err := p.StartTurn(g); err != nil {
		return err
	}
	if err := g.actionPhase(p); err != nil {
		return err
	}
	if err := g.treasurePhase(p); err != nil {
		return err
	}
	if err := g.buyPhase(p); err != nil {
		return err
	}
	if err := g.Effects.FireTurnHooks(HookTurnEnd, g, p); err != nil {
		return err
	}
	if err := g.cleanupPhase(p); err != nil {
		return err
	}
	g.costReduction = 0
	return nil
}

// actionPhase loops while the player has actions and Action cards in hand,
// letting the decider play one card at a time or stop early.
func (g *Game) actionPhase(p *Player) error {
	g.phase = PhaseAction
	g.logEvent(log.NewPhaseChangeEvent(g.turn, p.Name, g.phase.String()))

	for p.State.Actions > 0 {
		valid := p.HandCards(TypeAction)
		if len(valid) == 0 {
			return nil
		}
		choice, err := p.Decider.ActionPhaseDecision(g.ctx, g, p, valid)
		if err != nil {
			return err
		}
		if err := validateChoice(valid, choice); err != nil {
			return err
		}
		if choice == nil {
			return nil
		}
		if err := p.Play(g, choice, true); err != nil {
			return err
		}
	}
	return nil
}

// treasurePhase plays the decider's chosen batch of treasures.
func (g *Game) treasurePhase(p *Player) error {
	g.phase = PhaseTreasure
	g.logEvent(log.NewPhaseChangeEvent(g.turn, p.Name, g.phase.String()))

	valid := p.HandCards(TypeTreasure)
	if len(valid) == 0 {
		return nil
	}
	chosen, err := p.Decider.TreasurePhaseDecision(g.ctx, g, p, valid)
	if err != nil {
		return err
	}
	if err := validateSelection(valid, chosen, 0, -1); err != nil {
		return err
	}
	for _, c := range chosen {
		if err := p.ExactPlay(g, c, true); err != nil {
			return err
		}
	}
	return nil
}

// buyPhase offers the affordable supply cards while the player has buys,
// stopping when the decider declines.
func (g *Game) buyPhase(p *Player) error {
	g.phase = PhaseBuy
	g.logEvent(log.NewPhaseChangeEvent(g.turn, p.Name, g.phase.String()))

	for p.State.Buys > 0 {
		var affordable []*Card
		for _, c := range g.Supply.AvailableCards() {
			cost := c.GetCost(p, g)
			if cost.Money <= p.State.Money && cost.Potions <= p.State.Potions {
				affordable = append(affordable, c)
			}
		}
		if len(affordable) == 0 {
			return nil
		}
		choice, err := p.Decider.BuyPhaseDecision(g.ctx, g, p, affordable)
		if err != nil {
			return err
		}
		if err := validateChoice(affordable, choice); err != nil {
			return err
		}
		if choice == nil {
			return nil
		}
		if err := p.Buy(g, choice); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) cleanupPhase(p *Player) error {
	g.phase = PhaseCleanup
	g.logEvent(log.NewPhaseChangeEvent(g.turn, p.Name, g.phase.String()))
	return p.StartCleanupPhase(g)
}

// --- Result ---

// PlayerSummary is one player's final standing.
type PlayerSummary struct {
	Name     string
	Score    int
	Turns    int
	Shuffles int
	Deck     map[string]int
}

// Result is the outcome of a completed game.
type Result struct {
	GameID  string
	Winners []string
	Turns   int
	Players []PlayerSummary
}

// finish computes each player's score and determines the winner: highest
// score, ties broken by fewest turns taken, players tied on both are joint
// winners. The ordering is transitive, so it holds for three-way ties too.
func (g *Game) finish() *Result {
	res := &Result{GameID: g.ID, Turns: g.turn}
	for _, p := range g.Players {
		s := PlayerSummary{
			Name:     p.Name,
			Score:    p.Score(),
			Turns:    p.TurnsTaken,
			Shuffles: p.Shuffles,
			Deck:     p.DeckComposition(),
		}
		res.Players = append(res.Players, s)
		g.logEvent(log.NewScoreEvent(g.turn, p.Name, s.Score))
	}

	ranked := make([]PlayerSummary, len(res.Players))
	copy(ranked, res.Players)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Turns < ranked[j].Turns
	})
	best := ranked[0]
	for _, s := range ranked {
		if s.Score == best.Score && s.Turns == best.Turns {
			res.Winners = append(res.Winners, s.Name)
		}
	}
	g.logEvent(log.NewWinnerEvent(g.turn, res.Winners))
	return res
}
