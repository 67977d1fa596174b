package sarsa

import "fmt"

// Stats accumulates statistics over every trial an agent drives. Stats
// are never reset during a run.
type Stats struct {
	Trials              int
	DestinationsReached int
	PositiveReward      float64
	NegativeReward      float64
	TimeUsed            int

	// Displacement is the summed distance between the start of a trial
	// and the agent's location when it arrived or ran out of time
	Displacement float64
}

// observe records a single step. The reward falls in exactly one of
// three buckets: negative, arrival (at least threshold) or positive.
// Independently, displacement is added once more if the deadline read
// on this step is zero, so a step that both arrives and times out
// counts displacement twice.
func (s *Stats) observe(reward, threshold float64, deadline int,
	displacement func() float64) {
	s.TimeUsed++

	switch {
	case reward < 0:
		s.NegativeReward += reward

	case reward >= threshold:
		s.DestinationsReached++
		s.PositiveReward += reward
		s.Displacement += displacement()

	default:
		s.PositiveReward += reward
	}

	if deadline == 0 {
		s.Displacement += displacement()
	}
}

// Report summarises Stats as per-trial averages
type Report struct {
	Trials          int
	ReachRate       float64
	AveragePositive float64
	AverageNegative float64
	AverageTime     float64

	// AverageVelocity is displacement per timestep
	AverageVelocity float64
}

// Report returns the per-trial averages of the Stats
func (s Stats) Report() Report {
	r := Report{Trials: s.Trials}
	if s.Trials > 0 {
		n := float64(s.Trials)
		r.ReachRate = float64(s.DestinationsReached) / n
		r.AveragePositive = s.PositiveReward / n
		r.AverageNegative = s.NegativeReward / n
		r.AverageTime = float64(s.TimeUsed) / n
	}
	if s.TimeUsed > 0 {
		r.AverageVelocity = s.Displacement / float64(s.TimeUsed)
	}
	return r
}

func (r Report) String() string {
	str := "Report | Trials: %d  |  Reach Rate: %.2f  |  Positive: %.2f  |  " +
		"Negative: %.2f  |  Time: %.2f  |  Velocity: %.3f"

	return fmt.Sprintf(str, r.Trials, r.ReachRate, r.AveragePositive,
		r.AverageNegative, r.AverageTime, r.AverageVelocity)
}
