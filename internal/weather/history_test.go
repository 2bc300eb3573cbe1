package weather

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	history, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() { history.Close() })
	if err := history.Init(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return history
}

func TestHistory_SaveAndRecent(t *testing.T) {
	history := openTestHistory(t)
	ctx := context.Background()

	reports := []Report{
		{City: "Berlin", TempC: 21, Condition: "Partly cloudy"},
		{City: "Lisbon", TempC: 28, Condition: "Sunny"},
		{City: "Oslo", TempC: 11, Condition: "Light rain"},
	}
	for _, report := range reports {
		if err := history.Save(ctx, report); err != nil {
			t.Fatalf("save %s: %v", report.City, err)
		}
	}

	lookups, err := history.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(lookups) != 2 {
		t.Fatalf("expected 2 lookups, got %d", len(lookups))
	}
	if lookups[0].City != "Oslo" {
		t.Errorf("expected newest lookup first, got %s", lookups[0].City)
	}
	if lookups[0].At.IsZero() {
		t.Error("lookup timestamp should be recorded")
	}
}

func TestHistory_RecentOnEmptyDatabase(t *testing.T) {
	history := openTestHistory(t)

	lookups, err := history.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(lookups) != 0 {
		t.Fatalf("expected no lookups, got %d", len(lookups))
	}
}
