package game

import (
	"log/slog"
	"sort"
	"time"
)

// PerfStats keeps a rolling window of durations per tick phase.
type PerfStats struct {
	samples    map[string][]time.Duration
	maxSamples int
}

// NewPerfStats creates a tracker holding about two seconds of ticks at 60 fps.
func NewPerfStats() *PerfStats {
	return &PerfStats{
		samples:    make(map[string][]time.Duration),
		maxSamples: 120,
	}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(phase string, d time.Duration) {
	s := append(p.samples[phase], d)
	if len(s) > p.maxSamples {
		s = s[len(s)-p.maxSamples:]
	}
	p.samples[phase] = s
}

// Avg returns the average duration for the named phase.
func (p *PerfStats) Avg(phase string) time.Duration {
	s := p.samples[phase]
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}

// Total returns the sum of all phase averages, i.e. the mean tick cost.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for phase := range p.samples {
		total += p.Avg(phase)
	}
	return total
}

// SortedNames returns phase names sorted by average duration, slowest first.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.samples))
	for phase := range p.samples {
		names = append(names, phase)
	}
	sort.Slice(names, func(i, j int) bool {
		ai, aj := p.Avg(names[i]), p.Avg(names[j])
		if ai != aj {
			return ai > aj
		}
		return names[i] < names[j]
	})
	return names
}

// LogValue implements slog.LogValuer.
func (p *PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Duration("total", p.Total().Round(time.Microsecond))}
	for _, phase := range p.SortedNames() {
		attrs = append(attrs, slog.Duration(phase, p.Avg(phase).Round(time.Microsecond)))
	}
	return slog.GroupValue(attrs...)
}
