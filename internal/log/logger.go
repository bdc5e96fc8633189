package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	// Pad phase to 14 chars for alignment
	for len(phase) < 14 {
		phase += " "
	}

	return fmt.Sprintf("T%-3d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int, player string, playerTurn int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d: %s (turn %d) ===", turn, player, playerTurn),
	}
}

func NewPhaseChangeEvent(turn int, player, phase string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase → %s", phase),
	}
}

func NewDrawEvent(turn int, phase, player, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", player, cardName),
	}
}

func NewShuffleEvent(turn int, phase, player string, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventShuffle,
		Details: fmt.Sprintf("%s shuffles their deck (%d cards)", player, count),
	}
}

func NewPlayEvent(turn int, phase, player, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventPlay,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s", player, cardName),
	}
}

func NewBuyEvent(turn int, phase, player, cardName string, cost int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventBuy,
		Card:    cardName,
		Details: fmt.Sprintf("%s buys %s (cost %d)", player, cardName, cost),
	}
}

func NewGainEvent(turn int, phase, player, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventGain,
		Card:    cardName,
		Details: fmt.Sprintf("%s gains %s", player, cardName),
	}
}

func NewDiscardEvent(turn int, phase, player, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %s", player, cardName),
	}
}

func NewTrashEvent(turn int, phase, player, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventTrash,
		Card:    cardName,
		Details: fmt.Sprintf("%s trashes %s", player, cardName),
	}
}

func NewTopdeckEvent(turn int, phase, player, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventTopdeck,
		Card:    cardName,
		Details: fmt.Sprintf("%s topdecks %s", player, cardName),
	}
}

func NewRevealEvent(turn int, phase, player, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventReveal,
		Card:    cardName,
		Details: fmt.Sprintf("%s reveals %s", player, cardName),
	}
}

func NewSetAsideEvent(turn int, phase, player, cardName, mat string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventSetAside,
		Card:    cardName,
		Details: fmt.Sprintf("%s sets aside %s on %s mat", player, cardName, mat),
	}
}

func NewScoreEvent(turn int, player string, score int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventScore,
		Details: fmt.Sprintf("%s scores %d", player, score),
	}
}

func NewWinnerEvent(turn int, winners []string) GameEvent {
	if len(winners) > 1 {
		return GameEvent{
			Turn:    turn,
			Type:    EventWinner,
			Details: fmt.Sprintf("Tie between %s", strings.Join(winners, ", ")),
		}
	}
	name := ""
	if len(winners) == 1 {
		name = winners[0]
	}
	return GameEvent{
		Turn:    turn,
		Player:  name,
		Type:    EventWinner,
		Details: fmt.Sprintf("%s wins!", name),
	}
}
