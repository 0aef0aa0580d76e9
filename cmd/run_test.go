package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/habitrow/habitctl/internal/config"
	"github.com/habitrow/habitctl/internal/output"
)

func TestResolveDayParsesDateFlag(t *testing.T) {
	cfg := config.Config{Timezone: "UTC"}

	day, err := resolveDay(cfg, "2025-03-05")
	if err != nil {
		t.Fatalf("resolve day: %v", err)
	}

	want := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Fatalf("day mismatch: got %s, want %s", day, want)
	}
}

func TestResolveDayRejectsBadDate(t *testing.T) {
	cfg := config.Config{Timezone: "UTC"}

	_, err := resolveDay(cfg, "03/05/2025")
	if err == nil {
		t.Fatal("expected date format error")
	}

	var userErr *output.UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("expected *output.UserError, got %T: %v", err, err)
	}
}

func TestResolveDayDefaultsToNow(t *testing.T) {
	cfg := config.Config{Timezone: "UTC"}

	day, err := resolveDay(cfg, "")
	if err != nil {
		t.Fatalf("resolve day: %v", err)
	}
	if day.Location().String() != "UTC" {
		t.Fatalf("unexpected location: %s", day.Location())
	}
}

func TestResolveDayRejectsUnknownTimezone(t *testing.T) {
	cfg := config.Config{Timezone: "Not/AZone"}

	if _, err := resolveDay(cfg, "2025-03-05"); err == nil {
		t.Fatal("expected timezone error")
	}
}
