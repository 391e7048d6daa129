package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	TicksPerSecond    float64
	AveragePopulation float64
	TotalTicks        uint64
	FailedSteps       int
	Restarts          int
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(tick uint64, population int, duration time.Duration) {
	s.TotalTicks = tick
	if duration > 0 {
		s.TicksPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
