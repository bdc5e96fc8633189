package game

import "errors"

// Recoverable rule failures. Card effects catch the specific kind they
// anticipate with errors.Is rather than blanket-catching.
var (
	// Resource exhaustion
	ErrEmptyPile           = errors.New("pile is empty")
	ErrInsufficientMoney   = errors.New("insufficient money")
	ErrInsufficientBuys    = errors.New("insufficient buys")
	ErrInsufficientActions = errors.New("insufficient actions")

	// Lookup failures
	ErrPileNotFound = errors.New("pile not found")
	ErrCardNotFound = errors.New("card not found")

	// Protocol violations. These propagate out of Game.Play: a misconfigured
	// game or a broken decider is not something gameplay logic recovers from.
	ErrInvalidCardPlay          = errors.New("card cannot be played")
	ErrInvalidGameSetup         = errors.New("invalid game setup")
	ErrInvalidPlayerCount       = errors.New("invalid player count")
	ErrInvalidBotImplementation = errors.New("invalid decider response")
)
