package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSelection(t *testing.T) {
	valid := []*Card{Copper, Copper, Estate}

	require.NoError(t, validateSelection(valid, []*Card{Copper, Estate}, 0, 2))
	require.NoError(t, validateSelection(valid, []*Card{Copper, Copper}, 2, 2))
	require.NoError(t, validateSelection(valid, nil, 0, -1))

	// More copies than the valid set holds.
	err := validateSelection(valid, []*Card{Estate, Estate}, 0, 2)
	assert.True(t, errors.Is(err, ErrInvalidBotImplementation))

	// A card not offered at all.
	err = validateSelection(valid, []*Card{Gold}, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidBotImplementation))

	// Cardinality bounds.
	err = validateSelection(valid, []*Card{Copper}, 2, 3)
	assert.True(t, errors.Is(err, ErrInvalidBotImplementation))
	err = validateSelection(valid, []*Card{Copper, Copper, Estate}, 0, 2)
	assert.True(t, errors.Is(err, ErrInvalidBotImplementation))

	// max < 0 means unbounded.
	require.NoError(t, validateSelection(valid, []*Card{Copper, Copper, Estate}, 0, -1))

	err = validateSelection(valid, []*Card{nil}, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidBotImplementation))
}

func TestValidateChoice(t *testing.T) {
	valid := []*Card{Village, Smithy}

	require.NoError(t, validateChoice(valid, nil))
	require.NoError(t, validateChoice(valid, Smithy))

	err := validateChoice(valid, Witch)
	assert.True(t, errors.Is(err, ErrInvalidBotImplementation))
}

// rogueDecider always answers with a card it was never offered.
type rogueDecider struct {
	scriptedDecider
}

func (d *rogueDecider) ActionPhaseDecision(ctx context.Context, g *Game, p *Player, valid []*Card) (*Card, error) {
	return Witch, nil
}

func TestActionPhaseRejectsInvalidChoice(t *testing.T) {
	d := &rogueDecider{}
	d.t = t
	p := NewPlayer("rogue", d)
	g, _ := newTestGame(t, p)
	giveHand(p, Village)
	p.State = State{Actions: 1, Buys: 1}

	err := g.actionPhase(p)
	assert.True(t, errors.Is(err, ErrInvalidBotImplementation))
}
