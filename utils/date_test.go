package utils

import (
	"testing"
	"time"
)

func TestCombinePunchDateTime(t *testing.T) {
	got, err := CombinePunchDateTime("25/12/2024", "17:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 12, 25, 17, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := CombinePunchDateTime("2024-12-25", "17:30:00"); err == nil {
		t.Error("expected error for ISO-shaped date")
	}
	if _, err := CombinePunchDateTime("25/12/2024", "25:00:00"); err == nil {
		t.Error("expected error for out-of-range time")
	}
}

func TestSecondsOfDay(t *testing.T) {
	ts := time.Date(2024, 12, 25, 2, 15, 0, 0, time.UTC)
	if got := SecondsOfDay(ts); got != 2*3600+15*60 {
		t.Errorf("got %d", got)
	}
}

func TestClockSeconds(t *testing.T) {
	got, err := ClockSeconds("17:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 17*3600 {
		t.Errorf("got %d, want %d", got, 17*3600)
	}

	if _, err := ClockSeconds("5pm"); err == nil {
		t.Error("expected error for non-clock value")
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 12, 25, 23, 59, 59, 0, time.UTC)
	want := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	if got := DateOf(ts); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
