package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
	// StableAt is the generation whose step changed nothing, -1 while still evolving
	StableAt int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), StableAt: -1}
}

// Update records one frame. duration is the time since the previous Update;
// the rate counts only the generations completed within it.
func (s *Stats) Update(generation int, population int, duration time.Duration, stable bool) {
	if duration > 0 {
		stepped := max(generation-s.TotalGenerations, 0)
		s.GenerationsPerSecond = float64(stepped) / duration.Seconds()
	}
	s.TotalGenerations = generation
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	if stable && s.StableAt < 0 {
		s.StableAt = generation
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
