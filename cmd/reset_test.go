package cmd

import (
	"testing"
	"time"
)

func TestUntilNextRunSameDay(t *testing.T) {
	now := time.Date(2023, 2, 12, 1, 30, 0, 0, time.UTC)
	wait := untilNextRun(now, 3)
	if wait != 90*time.Minute {
		t.Errorf("expected 90m, got %v", wait)
	}
}

func TestUntilNextRunRollsToTomorrow(t *testing.T) {
	now := time.Date(2023, 2, 12, 3, 0, 0, 0, time.UTC)
	wait := untilNextRun(now, 3)
	if wait != 24*time.Hour {
		t.Errorf("expected 24h, got %v", wait)
	}

	now = time.Date(2023, 2, 12, 23, 0, 0, 0, time.UTC)
	wait = untilNextRun(now, 0)
	if wait != time.Hour {
		t.Errorf("expected 1h, got %v", wait)
	}
}
