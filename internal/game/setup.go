package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/evanofslack/pyminion-sub000/internal/log"
)

const (
	kingdomSize     = 10
	kingdomPileSize = 10
	defaultMaxTurns = 500
)

// Expansion is a named set of kingdom cards a game may draw from.
type Expansion struct {
	Name  string
	Cards []*Card
}

// Config holds the construction parameters for a game.
type Config struct {
	// Expansions to draw kingdom cards from.
	Expansions []Expansion

	// Kingdom explicitly selects the kingdom cards by name. Empty means a
	// random draw of 10 from the expansions.
	Kingdom []string

	// StartingDeck overrides the default 7 Copper + 3 Estate.
	StartingDeck []*Card

	// Seed for the shuffle RNG. 0 picks a time-based seed.
	Seed int64

	// RandomOrder shuffles the player order once at start.
	RandomOrder bool

	// Logger receives game events. Nil disables event logging.
	Logger log.EventLogger

	// MaxTurns is a safety limit on total turns. 0 means the default.
	MaxTurns int
}

// NewGame validates the configuration and builds a ready-to-play game.
// Violations surface here, not mid-game.
func NewGame(cfg Config, players ...*Player) (*Game, error) {
	if len(players) < 1 || len(players) > 4 {
		return nil, fmt.Errorf("%w: %d (want 1-4)", ErrInvalidPlayerCount, len(players))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	kingdom, err := selectKingdom(cfg, rng)
	if err != nil {
		return nil, err
	}
	supply, err := buildSupply(kingdom, len(players))
	if err != nil {
		return nil, err
	}

	ordered := make([]*Player, len(players))
	copy(ordered, players)
	if cfg.RandomOrder {
		rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	starting := cfg.StartingDeck
	if starting == nil {
		starting = DefaultStartingDeck()
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = defaultMaxTurns
	}

	return &Game{
		ID:           uuid.NewString(),
		Supply:       supply,
		Trash:        NewCardStack(),
		Players:      ordered,
		Effects:      NewRegistry(),
		Logger:       cfg.Logger,
		rand:         rng,
		maxTurns:     maxTurns,
		startingDeck: starting,
	}, nil
}

// DefaultStartingDeck returns the standard 7 Copper + 3 Estate.
func DefaultStartingDeck() []*Card {
	deck := make([]*Card, 0, 10)
	for i := 0; i < 7; i++ {
		deck = append(deck, Copper)
	}
	for i := 0; i < 3; i++ {
		deck = append(deck, Estate)
	}
	return deck
}

// selectKingdom resolves the kingdom card set: the explicit selection when
// given, otherwise a random draw from the expansion pool.
func selectKingdom(cfg Config, rng *rand.Rand) ([]*Card, error) {
	pool := make(map[string]*Card)
	var ordered []*Card
	for _, exp := range cfg.Expansions {
		for _, c := range exp.Cards {
			if _, ok := pool[c.Name]; ok {
				continue
			}
			pool[c.Name] = c
			ordered = append(ordered, c)
		}
	}

	if len(cfg.Kingdom) > 0 {
		var kingdom []*Card
		for _, name := range cfg.Kingdom {
			c, ok := pool[name]
			if !ok {
				return nil, fmt.Errorf("%w: kingdom card %q not in the supplied expansions", ErrInvalidGameSetup, name)
			}
			kingdom = append(kingdom, c)
		}
		return kingdom, nil
	}

	if len(ordered) < kingdomSize {
		return nil, fmt.Errorf("%w: expansions supply %d kingdom cards, need %d", ErrInvalidGameSetup, len(ordered), kingdomSize)
	}
	rng.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered[:kingdomSize], nil
}

// buildSupply lays out the basic piles plus one pile per kingdom card.
func buildSupply(kingdom []*Card, numPlayers int) (*Supply, error) {
	victoryCount := 8
	if numPlayers > 2 {
		victoryCount = 12
	}
	// Never below the 2-player count, so a solo game does not start with an
	// empty pile counting toward the end condition.
	curseCount := 10 * (numPlayers - 1)
	if curseCount < 10 {
		curseCount = 10
	}

	piles := []*Pile{
		NewPile(Copper, 60-7*numPlayers),
		NewPile(Silver, 40),
		NewPile(Gold, 30),
		NewPile(Estate, victoryCount),
		NewPile(Duchy, victoryCount),
		NewPile(Province, victoryCount),
		NewPile(Curse, curseCount),
	}
	for _, c := range kingdom {
		size := kingdomPileSize
		if c.Types.Has(TypeVictory) {
			size = victoryCount
		}
		piles = append(piles, NewPile(c, size))
	}
	return NewSupply(piles...)
}
