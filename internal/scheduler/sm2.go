// Package scheduler implements the SM-2 spaced-repetition algorithm.
//
// The computation is pure: given the prior scheduling state and a recall
// rating it returns the new ease factor, interval, repetition streak and
// next due timestamp, with no I/O and no clock access.
package scheduler

import (
	"math"
	"time"
)

const (
	// DefaultEaseFactor is the ease assigned to never-reviewed characters
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor the ease factor never drops below
	MinEaseFactor = 1.3
	// PassThreshold is the lowest rating counted as a successful recall
	PassThreshold = 3
	// MinRating and MaxRating bound the accepted recall quality scale
	MinRating = 0
	MaxRating = 5
)

// State is the prior scheduling state of one character for one user
type State struct {
	EaseFactor  float64
	Interval    int // days
	Repetitions int // consecutive successful reviews
}

// NewState returns the bootstrap state for a never-reviewed character
func NewState() State {
	return State{EaseFactor: DefaultEaseFactor, Interval: 0, Repetitions: 0}
}

// Result is the scheduling state produced by a review
type Result struct {
	EaseFactor   float64
	Interval     int // days
	Repetitions  int
	NextReviewAt time.Time
}

// Compute applies SM-2 to the prior state for a review submitted at
// reviewedAt with the given rating (0-5, >= 3 is a success).
//
// A failed recall resets the streak and schedules the character for the
// next day. Successful recalls follow the 1 day / 6 days /
// round(interval * ease) ladder. The ease adjustment is applied on both
// outcomes and clamped at MinEaseFactor. The caller validates the rating
// range; Compute itself does not.
func Compute(prior State, rating int, reviewedAt time.Time) Result {
	interval := prior.Interval
	repetitions := prior.Repetitions

	if rating < PassThreshold {
		repetitions = 0
		interval = 1
	} else {
		repetitions++
		switch {
		case repetitions == 1:
			interval = 1
		case repetitions == 2:
			interval = 6
		default:
			// math.Round rounds ties away from zero, matching the
			// interval progression of existing study records.
			interval = int(math.Round(float64(prior.Interval) * prior.EaseFactor))
		}
	}

	ease := prior.EaseFactor + (0.1 - float64(MaxRating-rating)*(0.08+float64(MaxRating-rating)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	return Result{
		EaseFactor:  ease,
		Interval:    interval,
		Repetitions: repetitions,
		// Fixed 86400-second days, independent of calendar or zone.
		NextReviewAt: reviewedAt.Add(time.Duration(interval) * 24 * time.Hour),
	}
}
