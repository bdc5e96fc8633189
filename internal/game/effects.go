package game

import (
	"fmt"

	"github.com/google/uuid"
)

// hookName builds a unique registration name for one played copy of a card,
// so two copies of the same card unregister independently.
func hookName(base string) string {
	return fmt.Sprintf("%s/%s", base, uuid.NewString()[:8])
}

// The effect registry is the mechanism by which card effects hook into future
// game events without the engine knowing about specific cards. A card's Play
// registers a named handler under one of the event categories below; the
// Player and Game fire the category when the corresponding event occurs.
// Handlers fire in registration order and may unregister themselves (or any
// other handler) from within their own invocation.

// HookKind categorizes the game events effects can attach to. New categories
// can be added without touching existing card code.
type HookKind int

const (
	HookOnPlay HookKind = iota
	HookOnGain
	HookOnBuy
	HookOnDiscard
	HookOnDraw
	HookOnShuffle
	HookTurnStart
	HookTurnEnd
)

func (k HookKind) String() string {
	switch k {
	case HookOnPlay:
		return "on-play"
	case HookOnGain:
		return "on-gain"
	case HookOnBuy:
		return "on-buy"
	case HookOnDiscard:
		return "on-discard"
	case HookOnDraw:
		return "on-draw"
	case HookOnShuffle:
		return "on-shuffle"
	case HookTurnStart:
		return "turn-start"
	case HookTurnEnd:
		return "turn-end"
	default:
		return "unknown"
	}
}

// CardHook handles card-scoped events (on-play, on-gain, on-buy, on-discard,
// on-draw). p is the player the event happened to, c the card involved.
type CardHook func(g *Game, p *Player, c *Card) error

// TurnHook handles player-scoped events (on-shuffle, turn-start, turn-end).
type TurnHook func(g *Game, p *Player) error

type registration struct {
	name    string
	card    CardHook
	turn    TurnHook
	removed bool
}

// Registry owns all registered effects. Cards never hold references to their
// registrations; removal is by the name given at registration time.
type Registry struct {
	hooks map[HookKind][]*registration
}

func NewRegistry() *Registry {
	return &Registry{hooks: make(map[HookKind][]*registration)}
}

// RegisterCardHook attaches a named handler to a card-scoped event category.
func (r *Registry) RegisterCardHook(kind HookKind, name string, h CardHook) {
	r.hooks[kind] = append(r.hooks[kind], &registration{name: name, card: h})
}

// RegisterTurnHook attaches a named handler to a player-scoped event category.
func (r *Registry) RegisterTurnHook(kind HookKind, name string, h TurnHook) {
	r.hooks[kind] = append(r.hooks[kind], &registration{name: name, turn: h})
}

// Unregister removes every handler with the given name from the category.
// Removing a name that is not registered is a no-op, so handlers can
// unregister themselves idempotently.
func (r *Registry) Unregister(kind HookKind, name string) {
	regs := r.hooks[kind]
	kept := regs[:0]
	for _, reg := range regs {
		if reg.name == name {
			reg.removed = true
			continue
		}
		kept = append(kept, reg)
	}
	r.hooks[kind] = kept
}

// Registered reports whether a handler with the given name is registered.
func (r *Registry) Registered(kind HookKind, name string) bool {
	for _, reg := range r.hooks[kind] {
		if reg.name == name {
			return true
		}
	}
	return false
}

// Len returns the number of handlers registered for the category.
func (r *Registry) Len(kind HookKind) int {
	return len(r.hooks[kind])
}

// FireCardHooks fires a card-scoped category in FIFO registration order.
// The list is snapshotted before invoking so handlers may register or
// unregister freely; an entry unregistered earlier in the same pass is
// skipped, never invoked.
func (r *Registry) FireCardHooks(kind HookKind, g *Game, p *Player, c *Card) error {
	snapshot := make([]*registration, len(r.hooks[kind]))
	copy(snapshot, r.hooks[kind])
	for _, reg := range snapshot {
		if reg.removed || reg.card == nil {
			continue
		}
		if err := reg.card(g, p, c); err != nil {
			return err
		}
	}
	return nil
}

// FireTurnHooks fires a player-scoped category in FIFO registration order,
// with the same mid-pass mutation tolerance as FireCardHooks.
func (r *Registry) FireTurnHooks(kind HookKind, g *Game, p *Player) error {
	snapshot := make([]*registration, len(r.hooks[kind]))
	copy(snapshot, r.hooks[kind])
	for _, reg := range snapshot {
		if reg.removed || reg.turn == nil {
			continue
		}
		if err := reg.turn(g, p); err != nil {
			return err
		}
	}
	return nil
}
