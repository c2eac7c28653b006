package async

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var _parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Schedule tracks the next activation of a five field cron expression.
// Workers poll it from their ticker.
type Schedule struct {
	mu       sync.Mutex
	schedule cron.Schedule
	next     time.Time
}

func NewSchedule(expression string, now time.Time) (*Schedule, error) {
	parsed, err := _parser.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("parsing cron expression %q: %w", expression, err)
	}

	return &Schedule{schedule: parsed, next: parsed.Next(now)}, nil
}

// Due reports whether an activation passed since the last call that returned
// true. Missed activations collapse into one.
func (s *Schedule) Due(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Before(s.next) {
		return false
	}

	s.next = s.schedule.Next(now)
	return true
}

func (s *Schedule) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.next
}
