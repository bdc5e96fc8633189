package bots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanofslack/pyminion-sub000/internal/game"
	"github.com/evanofslack/pyminion-sub000/internal/log"
)

func TestBigMoneyBuyPriority(t *testing.T) {
	b := NewBigMoney()
	ctx := context.Background()

	valid := []*game.Card{game.Copper, game.Silver, game.Gold, game.Province}
	c, err := b.BuyPhaseDecision(ctx, nil, nil, valid)
	require.NoError(t, err)
	assert.Equal(t, "Province", c.Name)

	valid = []*game.Card{game.Copper, game.Silver}
	c, err = b.BuyPhaseDecision(ctx, nil, nil, valid)
	require.NoError(t, err)
	assert.Equal(t, "Silver", c.Name)

	valid = []*game.Card{game.Copper, game.Estate}
	c, err = b.BuyPhaseDecision(ctx, nil, nil, valid)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestBigMoneyDiscardsDeadCardsFirst(t *testing.T) {
	b := NewBigMoney()
	valid := []*game.Card{game.Gold, game.Estate, game.Copper, game.Curse}

	chosen, err := b.DiscardDecision(context.Background(), nil, nil, "", valid, 2, 2)
	require.NoError(t, err)
	require.Len(t, chosen, 2)
	assert.ElementsMatch(t, []string{"Estate", "Curse"}, []string{chosen[0].Name, chosen[1].Name})
}

func TestBigMoneyTrashesOnlyCurses(t *testing.T) {
	b := NewBigMoney()
	valid := []*game.Card{game.Gold, game.Curse, game.Copper}

	chosen, err := b.TrashDecision(context.Background(), nil, nil, "", valid, 0, 3)
	require.NoError(t, err)
	require.Len(t, chosen, 1)
	assert.Equal(t, "Curse", chosen[0].Name)
}

func TestBigMoneyGainsMostExpensive(t *testing.T) {
	b := NewBigMoney()
	valid := []*game.Card{game.Copper, game.Silver, game.Estate}

	chosen, err := b.GainDecision(context.Background(), nil, nil, "", valid, 1, 1)
	require.NoError(t, err)
	require.Len(t, chosen, 1)
	assert.Equal(t, "Silver", chosen[0].Name)
}

func TestBigMoneyMirrorMatchCompletes(t *testing.T) {
	logger := log.NewMemoryLogger()
	p1 := game.NewPlayer("bot1", NewBigMoney())
	p2 := game.NewPlayer("bot2", NewBigMoney())

	g, err := game.NewGame(game.Config{
		Expansions: []game.Expansion{game.BaseSet},
		Seed:       99,
		Logger:     logger,
	}, p1, p2)
	require.NoError(t, err)

	res, err := g.Play(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, res.Winners)
	assert.Greater(t, res.Turns, 2)
	require.Len(t, res.Players, 2)

	// Every card a player ended with is either starting stock or logged as
	// bought or gained, minus what was trashed.
	for _, p := range []*game.Player{p1, p2} {
		bought := countEvents(logger, log.EventBuy, p.Name)
		gained := countEvents(logger, log.EventGain, p.Name)
		trashed := countEvents(logger, log.EventTrash, p.Name)
		assert.Equal(t, 10+bought+gained-trashed, p.TotalCards(), p.Name)
	}

	// Big money never skips a treasure, so both decks grow past the start.
	assert.Greater(t, p1.TotalCards(), 10)
	assert.Greater(t, p2.TotalCards(), 10)
}

func TestBigMoneyMirrorMatchIsDeterministic(t *testing.T) {
	run := func() *game.Result {
		g, err := game.NewGame(game.Config{
			Expansions: []game.Expansion{game.BaseSet},
			Seed:       7,
		}, game.NewPlayer("bot1", NewBigMoney()), game.NewPlayer("bot2", NewBigMoney()))
		require.NoError(t, err)
		res, err := g.Play(context.Background())
		require.NoError(t, err)
		return res
	}

	a := run()
	b := run()
	assert.Equal(t, a.Winners, b.Winners)
	assert.Equal(t, a.Turns, b.Turns)
	assert.Equal(t, a.Players[0].Score, b.Players[0].Score)
	assert.Equal(t, a.Players[1].Score, b.Players[1].Score)
}

func countEvents(l *log.MemoryLogger, t log.EventType, player string) int {
	n := 0
	for _, e := range l.EventsOfType(t) {
		if e.Player == player {
			n++
		}
	}
	return n
}
