package game

import (
	"fmt"
	"math/rand"
)

// CardStack is an ordered collection of card references. The top of a deck is
// the last element (pop from end). Used for decks, hands, discard piles,
// playmats, the shared trash, and named mats.
type CardStack struct {
	cards []*Card
}

// NewCardStack creates a stack holding the given cards in order.
func NewCardStack(cards ...*Card) *CardStack {
	s := &CardStack{}
	s.cards = append(s.cards, cards...)
	return s
}

func (s *CardStack) Len() int {
	return len(s.cards)
}

// Cards returns the backing slice. Callers must not mutate it.
func (s *CardStack) Cards() []*Card {
	return s.cards
}

// Add places a card on top.
func (s *CardStack) Add(c *Card) {
	s.cards = append(s.cards, c)
}

// Pop removes and returns the top card, or nil if the stack is empty.
// Drawing from an empty deck is the Player's concern, not the stack's.
func (s *CardStack) Pop() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	c := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return c
}

// Remove takes out the first card matching the given name. Returns nil if no
// copy is present. Copies are interchangeable, so matching is by name.
func (s *CardStack) Remove(name string) *Card {
	for i, c := range s.cards {
		if c.Name == name {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return c
		}
	}
	return nil
}

// Contains reports whether any copy of the named card is present.
func (s *CardStack) Contains(name string) bool {
	for _, c := range s.cards {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Count returns the number of copies of the named card.
func (s *CardStack) Count(name string) int {
	n := 0
	for _, c := range s.cards {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Shuffle uniformly permutes the stack with the given RNG.
func (s *CardStack) Shuffle(r *rand.Rand) {
	r.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// MoveTo bulk-transfers every card into dst and empties the source.
func (s *CardStack) MoveTo(dst *CardStack) {
	dst.cards = append(dst.cards, s.cards...)
	s.cards = nil
}

// Clear empties the stack.
func (s *CardStack) Clear() {
	s.cards = nil
}

func (s *CardStack) String() string {
	return fmt.Sprintf("%v", s.cards)
}

// --- Pile ---

// Pile is a supply stack of identical cards. It tracks its canonical card
// name and rejects removal when empty.
type Pile struct {
	card  *Card
	count int
}

// NewPile creates a pile of count copies of the given card.
func NewPile(c *Card, count int) *Pile {
	return &Pile{card: c, count: count}
}

// Name returns the canonical card name of the pile.
func (p *Pile) Name() string {
	return p.card.Name
}

// Card returns the shared card definition backing the pile.
func (p *Pile) Card() *Card {
	return p.card
}

func (p *Pile) Len() int {
	return p.count
}

// Remove takes one card off the pile. Empty piles surface as a typed failure
// so "buy a card that's sold out" is recoverable by the caller.
func (p *Pile) Remove() (*Card, error) {
	if p.count == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPile, p.card.Name)
	}
	p.count--
	return p.card, nil
}

// Add returns one card to the pile.
func (p *Pile) Add() {
	p.count++
}
