package service

import (
	"math/rand/v2"
	"time"
)

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemRandom draws from the process-wide generator.
type SystemRandom struct{}

func (SystemRandom) Float64() float64 { return rand.Float64() }
