package statemachine

import (
	"fmt"
	"strings"

	"foodshare-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Actor string `json:"actor"` // "admin", "system"
}

// Machine is one transition table plus an O(1) lookup built from it
type Machine struct {
	Name        string
	transitions []Transition
	lookup      map[Transition]bool
}

func newMachine(name string, transitions ...Transition) *Machine {
	m := &Machine{Name: name, transitions: transitions, lookup: make(map[Transition]bool)}
	for _, t := range transitions {
		m.lookup[t] = true
	}
	return m
}

// Acceptor requests are resolved once, by the allocation engine
var Acceptor = newMachine("acceptor",
	Transition{From: string(models.RequestPending), To: string(models.RequestResolved), Actor: "system"},
)

// Restaurants and delivery people are approved by an admin
var Restaurant = newMachine("restaurant",
	Transition{From: string(models.StatusPending), To: string(models.StatusVerified), Actor: "admin"},
)

var Delivery = newMachine("delivery",
	Transition{From: string(models.StatusPending), To: string(models.StatusVerified), Actor: "admin"},
)

// ValidTransitionsFrom returns all valid next states from a given state
func (m *Machine) ValidTransitionsFrom(status string) []string {
	var nexts []string
	seen := map[string]bool{}
	for _, t := range m.transitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func (m *Machine) CanTransition(from, to, actor string) error {
	if m.lookup[Transition{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("invalid %s transition: %s → %s is not allowed for actor '%s'. Valid transitions from %s are: %s",
		m.Name, from, to, actor, from, m.describeValidFrom(from))
}

// IsTerminal reports whether no transition leaves status
func (m *Machine) IsTerminal(status string) bool {
	return len(m.ValidTransitionsFrom(status)) == 0
}

func (m *Machine) describeValidFrom(status string) string {
	nexts := m.ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	return strings.Join(nexts, ", ")
}

// Transitions returns the full table for documentation
func (m *Machine) Transitions() []Transition {
	return m.transitions
}
