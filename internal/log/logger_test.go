package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoggerAssignsSequenceNumbers(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnEvent(1, "alice", 1))
	l.Log(NewPlayEvent(1, "Action Phase", "alice", "Smithy"))
	l.Log(NewBuyEvent(1, "Buy Phase", "alice", "Silver", 3))

	events := l.Events()
	require.Len(t, events, 3)
	assert.Equal(t, 1, events[0].Seq)
	assert.Equal(t, 3, events[2].Seq)
	assert.Equal(t, events[2], l.LastEvent())
}

func TestMemoryLoggerEventsOfType(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewDrawEvent(1, "Action Phase", "alice", "Copper"))
	l.Log(NewPlayEvent(1, "Action Phase", "alice", "Smithy"))
	l.Log(NewDrawEvent(1, "Action Phase", "alice", "Estate"))

	draws := l.EventsOfType(EventDraw)
	require.Len(t, draws, 2)
	assert.Equal(t, "Copper", draws[0].Card)
	assert.Equal(t, "Estate", draws[1].Card)

	assert.Empty(t, l.EventsOfType(EventTrash))
}

func TestMemoryLoggerLastEventEmpty(t *testing.T) {
	l := NewMemoryLogger()
	assert.Equal(t, GameEvent{}, l.LastEvent())
}

func TestTextLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewGainEvent(3, "Buy Phase", "bob", "Witch"))
	l.Log(NewTrashEvent(3, "Action Phase", "bob", "Curse"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "bob gains Witch")
	assert.Contains(t, lines[1], "bob trashes Curse")

	// Events are also retained for inspection.
	assert.Len(t, l.Events(), 2)
}

func TestWinnerEventFormatting(t *testing.T) {
	solo := NewWinnerEvent(20, []string{"alice"})
	assert.Contains(t, solo.Details, "alice wins")

	tie := NewWinnerEvent(20, []string{"alice", "bob"})
	assert.Contains(t, tie.Details, "Tie between alice, bob")
}

func TestFormatAll(t *testing.T) {
	events := []GameEvent{
		NewTurnEvent(1, "alice", 1),
		NewPlayEvent(1, "Treasure Phase", "alice", "Copper"),
	}
	out := FormatAll(events)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "alice plays Copper")
}
