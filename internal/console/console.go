// Package console implements a human decider over a terminal. All choices go
// through numbered prompts; malformed input is rejected and re-prompted.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/evanofslack/pyminion-sub000/internal/game"
)

// Human is a game.Decider backed by a line-oriented terminal.
type Human struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHuman creates a human decider reading from in and writing prompts to out.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewReader(in), out: out}
}

var _ game.Decider = (*Human)(nil)

func (h *Human) printStatus(g *game.Game, p *game.Player) {
	fmt.Fprintf(h.out, "\n[%s] actions:%d money:%d buys:%d\n",
		p.Name, p.State.Actions, p.State.Money, p.State.Buys)
	fmt.Fprintf(h.out, "hand: %v\n", p.Hand.Cards())
}

func (h *Human) printChoices(cards []*game.Card) {
	for i, c := range cards {
		fmt.Fprintf(h.out, "  [%d] %s (%s) %s\n", i+1, c.Name, c.GetCost(nil, nil), c.Types)
	}
}

// readLine blocks on the terminal. EOF is surfaced so the caller can abort
// the game.
func (h *Human) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// pickOne prompts for a single choice by number; empty input declines when
// optional is true.
func (h *Human) pickOne(prompt string, valid []*game.Card, optional bool) (*game.Card, error) {
	for {
		fmt.Fprintf(h.out, "%s", prompt)
		if optional {
			fmt.Fprintf(h.out, " (enter to skip)")
		}
		fmt.Fprintln(h.out, ":")
		h.printChoices(valid)
		fmt.Fprint(h.out, "> ")

		line, err := h.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" && optional {
			return nil, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(valid) {
			fmt.Fprintf(h.out, "invalid choice %q\n", line)
			continue
		}
		return valid[n-1], nil
	}
}

// pickMany prompts for a space-separated list of numbers within the
// cardinality bounds. "all" selects everything.
func (h *Human) pickMany(prompt string, valid []*game.Card, min, max int) ([]*game.Card, error) {
	for {
		fmt.Fprintf(h.out, "%s (pick %d-%d, e.g. \"1 3\", or \"all\"):\n", prompt, min, max)
		h.printChoices(valid)
		fmt.Fprint(h.out, "> ")

		line, err := h.readLine()
		if err != nil {
			return nil, err
		}
		if line == "all" {
			if max >= 0 && len(valid) > max {
				fmt.Fprintf(h.out, "can pick at most %d\n", max)
				continue
			}
			return valid, nil
		}

		var chosen []*game.Card
		ok := true
		used := make(map[int]bool)
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil || n < 1 || n > len(valid) || used[n] {
				fmt.Fprintf(h.out, "invalid selection %q\n", field)
				ok = false
				break
			}
			used[n] = true
			chosen = append(chosen, valid[n-1])
		}
		if !ok {
			continue
		}
		if len(chosen) < min || (max >= 0 && len(chosen) > max) {
			fmt.Fprintf(h.out, "pick between %d and %d cards\n", min, max)
			continue
		}
		return chosen, nil
	}
}

func (h *Human) ActionPhaseDecision(ctx context.Context, g *game.Game, p *game.Player, valid []*game.Card) (*game.Card, error) {
	h.printStatus(g, p)
	return h.pickOne("Play an Action card", valid, true)
}

func (h *Human) TreasurePhaseDecision(ctx context.Context, g *game.Game, p *game.Player, valid []*game.Card) ([]*game.Card, error) {
	h.printStatus(g, p)
	return h.pickMany("Play Treasures", valid, 0, len(valid))
}

func (h *Human) BuyPhaseDecision(ctx context.Context, g *game.Game, p *game.Player, valid []*game.Card) (*game.Card, error) {
	h.printStatus(g, p)
	return h.pickOne("Buy a card", valid, true)
}

func (h *Human) BinaryDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, relevant []*game.Card) (bool, error) {
	for {
		fmt.Fprintf(h.out, "%s [y/n] > ", prompt)
		line, err := h.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(h.out, "answer y or n\n")
	}
}

func (h *Human) DiscardDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, valid []*game.Card, min, max int) ([]*game.Card, error) {
	return h.pickMany(prompt, valid, min, max)
}

func (h *Human) TrashDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, valid []*game.Card, min, max int) ([]*game.Card, error) {
	return h.pickMany(prompt, valid, min, max)
}

func (h *Human) GainDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, valid []*game.Card, min, max int) ([]*game.Card, error) {
	return h.pickMany(prompt, valid, min, max)
}

func (h *Human) TopdeckDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, valid []*game.Card, min, max int) ([]*game.Card, error) {
	return h.pickMany(prompt, valid, min, max)
}

func (h *Human) MultiPlayDecision(ctx context.Context, g *game.Game, p *game.Player, prompt string, c *game.Card) (bool, error) {
	return h.BinaryDecision(ctx, g, p, prompt, []*game.Card{c})
}
