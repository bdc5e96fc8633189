package game

import "fmt"

// Supply is the shared pool of card piles available for gaining and buying,
// one pile per distinct card name.
type Supply struct {
	piles []*Pile
}

// NewSupply creates a supply from the given piles. At most one pile per card
// name is permitted.
func NewSupply(piles ...*Pile) (*Supply, error) {
	seen := make(map[string]bool, len(piles))
	for _, p := range piles {
		if seen[p.Name()] {
			return nil, fmt.Errorf("%w: duplicate pile %q", ErrInvalidGameSetup, p.Name())
		}
		seen[p.Name()] = true
	}
	return &Supply{piles: piles}, nil
}

// Pile returns the pile matching the given card name.
func (s *Supply) Pile(name string) (*Pile, error) {
	for _, p := range s.piles {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPileNotFound, name)
}

// Piles returns all piles in supply order.
func (s *Supply) Piles() []*Pile {
	return s.piles
}

// GainCard removes one copy of the named card from its pile.
func (s *Supply) GainCard(c *Card) (*Card, error) {
	p, err := s.Pile(c.Name)
	if err != nil {
		return nil, err
	}
	return p.Remove()
}

// ReturnCard puts one copy of the named card back on its pile.
func (s *Supply) ReturnCard(c *Card) error {
	p, err := s.Pile(c.Name)
	if err != nil {
		return err
	}
	p.Add()
	return nil
}

// AvailableCards returns one representative card per non-empty pile,
// reflecting the current pile state.
func (s *Supply) AvailableCards() []*Card {
	var cards []*Card
	for _, p := range s.piles {
		if p.Len() > 0 {
			cards = append(cards, p.Card())
		}
	}
	return cards
}

// NumEmptyPiles returns the number of depleted piles.
func (s *Supply) NumEmptyPiles() int {
	n := 0
	for _, p := range s.piles {
		if p.Len() == 0 {
			n++
		}
	}
	return n
}

// PileLength returns the number of cards left in the named pile.
func (s *Supply) PileLength(name string) (int, error) {
	p, err := s.Pile(name)
	if err != nil {
		return 0, err
	}
	return p.Len(), nil
}
