package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplyRejectsDuplicatePiles(t *testing.T) {
	_, err := NewSupply(NewPile(Copper, 10), NewPile(Copper, 10))
	assert.True(t, errors.Is(err, ErrInvalidGameSetup))
}

func TestSupplyGainCard(t *testing.T) {
	s, err := NewSupply(NewPile(Silver, 2), NewPile(Estate, 1))
	require.NoError(t, err)

	c, err := s.GainCard(Silver)
	require.NoError(t, err)
	assert.Equal(t, "Silver", c.Name)

	n, err := s.PileLength("Silver")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.GainCard(Province)
	assert.True(t, errors.Is(err, ErrPileNotFound))

	_, err = s.GainCard(Estate)
	require.NoError(t, err)
	_, err = s.GainCard(Estate)
	assert.True(t, errors.Is(err, ErrEmptyPile))
}

func TestSupplyReturnCard(t *testing.T) {
	s, err := NewSupply(NewPile(Curse, 0))
	require.NoError(t, err)

	require.NoError(t, s.ReturnCard(Curse))
	n, err := s.PileLength("Curse")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.True(t, errors.Is(s.ReturnCard(Gold), ErrPileNotFound))
}

func TestSupplyAvailableCardsReflectsState(t *testing.T) {
	s, err := NewSupply(NewPile(Copper, 1), NewPile(Silver, 1))
	require.NoError(t, err)

	assert.Len(t, s.AvailableCards(), 2)

	_, err = s.GainCard(Copper)
	require.NoError(t, err)

	avail := s.AvailableCards()
	require.Len(t, avail, 1)
	assert.Equal(t, "Silver", avail[0].Name)
	assert.Equal(t, 1, s.NumEmptyPiles())
}
