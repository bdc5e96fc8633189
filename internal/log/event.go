package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventPhaseChange
	EventDraw
	EventShuffle
	EventPlay
	EventBuy
	EventGain
	EventDiscard
	EventTrash
	EventTopdeck
	EventReveal
	EventSetAside
	EventScore
	EventWinner
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventPhaseChange:
		return "PhaseChange"
	case EventDraw:
		return "Draw"
	case EventShuffle:
		return "Shuffle"
	case EventPlay:
		return "Play"
	case EventBuy:
		return "Buy"
	case EventGain:
		return "Gain"
	case EventDiscard:
		return "Discard"
	case EventTrash:
		return "Trash"
	case EventTopdeck:
		return "Topdeck"
	case EventReveal:
		return "Reveal"
	case EventSetAside:
		return "SetAside"
	case EventScore:
		return "Score"
	case EventWinner:
		return "Winner"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based, across all players)
	Phase   string    // current phase name (e.g. "Buy Phase")
	Player  string    // acting player name
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
