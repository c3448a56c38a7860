package statemachine

import (
	"strings"
	"testing"

	"foodshare-api/models"
)

func TestAcceptorPendingToResolved(t *testing.T) {
	err := Acceptor.CanTransition(string(models.RequestPending), string(models.RequestResolved), "system")
	if err != nil {
		t.Fatalf("expected transition to be allowed, got %v", err)
	}
}

func TestAcceptorResolvedIsTerminal(t *testing.T) {
	resolved := string(models.RequestResolved)
	if !Acceptor.IsTerminal(resolved) {
		t.Errorf("expected %s to be terminal", resolved)
	}

	err := Acceptor.CanTransition(resolved, string(models.RequestPending), "system")
	if err == nil {
		t.Fatal("expected Resolved → Pending to be rejected")
	}
	if !strings.Contains(err.Error(), "none (terminal state)") {
		t.Errorf("expected terminal hint in error, got %q", err.Error())
	}

	if err := Acceptor.CanTransition(resolved, resolved, "system"); err == nil {
		t.Error("expected Resolved → Resolved to be rejected")
	}
}

func TestWrongActorRejected(t *testing.T) {
	tests := []struct {
		name  string
		m     *Machine
		from  string
		to    string
		actor string
	}{
		{"admin cannot resolve acceptor", Acceptor, string(models.RequestPending), string(models.RequestResolved), "admin"},
		{"system cannot verify restaurant", Restaurant, string(models.StatusPending), string(models.StatusVerified), "system"},
		{"system cannot verify delivery", Delivery, string(models.StatusPending), string(models.StatusVerified), "system"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.m.CanTransition(tt.from, tt.to, tt.actor); err == nil {
				t.Errorf("expected %s → %s by %s to be rejected", tt.from, tt.to, tt.actor)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := Restaurant.ValidTransitionsFrom(string(models.StatusPending))
	if len(nexts) != 1 || nexts[0] != string(models.StatusVerified) {
		t.Errorf("expected [VERIFIED], got %v", nexts)
	}
	if got := Restaurant.ValidTransitionsFrom(string(models.StatusVerified)); len(got) != 0 {
		t.Errorf("expected no transitions from VERIFIED, got %v", got)
	}
}
