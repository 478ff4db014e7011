package game

import (
	"testing"
	"time"
)

func TestPerfStatsWindow(t *testing.T) {
	p := NewPerfStats()
	for i := 0; i < 200; i++ {
		p.Record("resolve", time.Millisecond)
	}
	p.Record("move", 4*time.Millisecond)

	if got := len(p.samples["resolve"]); got != 120 {
		t.Errorf("kept %d samples, want 120", got)
	}
	if got := p.Avg("resolve"); got != time.Millisecond {
		t.Errorf("Avg(resolve) = %v, want 1ms", got)
	}
	if got := p.Total(); got != 5*time.Millisecond {
		t.Errorf("Total() = %v, want 5ms", got)
	}
	if names := p.SortedNames(); len(names) != 2 || names[0] != "move" {
		t.Errorf("SortedNames() = %v, want move first", names)
	}
	if got := p.Avg("missing"); got != 0 {
		t.Errorf("Avg(missing) = %v, want 0", got)
	}
}
