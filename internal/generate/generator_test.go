package generate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"gpm-datagen/internal/narrative"
)

func newTestGenerator(params Params) *Generator {
	return New(params, narrative.NewOpsRenderer(), zerolog.Nop())
}

func TestGeneratorRunDefaults(t *testing.T) {
	ds, err := newTestGenerator(DefaultParams()).Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got := len(ds.Trades); got != 50 {
		t.Errorf("trades: got %d, want 50", got)
	}
	if got := len(ds.Positions); got < 50 || got > 60 {
		t.Errorf("positions: got %d, want between 50 and 60", got)
	}
	if got := len(ds.Settlements); got != 40 {
		t.Errorf("settlements: got %d, want 40", got)
	}
	if got := len(ds.Breaks); got != 30 {
		t.Errorf("breaks: got %d, want 30", got)
	}
	if got := len(ds.Tickets); got != 25 {
		t.Errorf("tickets: got %d, want 25", got)
	}
	if got := len(ds.ChangeTickets); got != 8 {
		t.Errorf("change tickets: got %d, want 8", got)
	}
	if got := len(ds.AuditTrail); got != 50 {
		t.Errorf("audit entries: got %d, want 50", got)
	}
	if got := len(ds.CorporateActions); got != 10 {
		t.Errorf("corporate actions: got %d, want 10", got)
	}
	if got := len(ds.Emails); got != 10 {
		t.Errorf("email threads: got %d, want 10", got)
	}
	if got := len(ds.Chats); got != 10 {
		t.Errorf("chat threads: got %d, want 10", got)
	}
	if got := len(ds.Scenarios); got != 5 {
		t.Errorf("scenarios: got %d, want 5", got)
	}

	for i, e := range ds.Emails {
		if !strings.Contains(e, "Settlement Break") {
			t.Errorf("email %d missing break subject line", i)
		}
		if !strings.Contains(e, "ITSM") {
			t.Errorf("email %d missing ticket reference", i)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	first, err := newTestGenerator(DefaultParams()).Run()
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := newTestGenerator(DefaultParams()).Run()
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs with the same seed produced different datasets")
	}
}

func TestGeneratorSeedChangesOutput(t *testing.T) {
	base, err := newTestGenerator(DefaultParams()).Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	params := DefaultParams()
	params.Seed = 7
	other, err := newTestGenerator(params).Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if reflect.DeepEqual(base.Trades, other.Trades) {
		t.Fatal("different seeds produced identical trades")
	}
}
