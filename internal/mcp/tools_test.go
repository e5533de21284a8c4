package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"runchart/internal/config"
	"runchart/internal/stats"
	"runchart/internal/tracker"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type fakeClient struct {
	activities []tracker.Activity
	lastAfter  time.Time
}

func (f *fakeClient) Activities(_ context.Context, after time.Time) ([]tracker.Activity, error) {
	f.lastAfter = after
	return f.activities, nil
}

func testServer(t *testing.T, client tracker.Client) *Server {
	t.Helper()
	cfg := &config.AppConfig{
		Sports:   []string{"Run"},
		Weeks:    4,
		CacheDir: t.TempDir(),
	}
	return NewServer(cfg, client)
}

func TestResolve_Defaults(t *testing.T) {
	s := testServer(t, &fakeClient{})

	sport, day, weeks, err := s.resolve("", "2025-04-10", 0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sport != "Run" {
		t.Errorf("sport = %q, want Run", sport)
	}
	if weeks != 4 {
		t.Errorf("weeks = %d, want 4", weeks)
	}
	if !day.Equal(time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day = %s, want 2025-04-10", day)
	}
}

func TestResolve_BadDate(t *testing.T) {
	s := testServer(t, &fakeClient{})
	if _, _, _, err := s.resolve("", "10.04.2025", 0); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}

func TestHandleWeeklyStats(t *testing.T) {
	s := testServer(t, &fakeClient{})
	s.store.Append("Run", []tracker.Activity{
		{ID: 1, SportType: "Run", StartDateLocal: "2025-04-10", Distance: 12000},
	})

	res, _, err := s.handleWeeklyStats(context.Background(), &sdk.CallToolRequest{}, weeklyStatsInput{Today: "2025-04-10"})
	if err != nil {
		t.Fatalf("handleWeeklyStats: %v", err)
	}

	text, ok := res.Content[0].(*sdk.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}

	var result stats.WeeklyResult
	if err := json.Unmarshal([]byte(text.Text), &result); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if result.CurrentWeekKm != 12.0 {
		t.Errorf("CurrentWeekKm = %v, want 12.0", result.CurrentWeekKm)
	}
	if len(result.Labels) != 4 {
		t.Errorf("expected 4 labels, got %d", len(result.Labels))
	}
}

func TestHandleSync(t *testing.T) {
	client := &fakeClient{activities: []tracker.Activity{
		{ID: 7, SportType: "Run", StartDateLocal: "2025-04-09", Distance: 5000},
	}}
	s := testServer(t, client)

	_, out, err := s.handleSync(context.Background(), &sdk.CallToolRequest{}, syncInput{})
	if err != nil {
		t.Fatalf("handleSync: %v", err)
	}
	if out.Sport != "Run" || out.Fetched != 1 || out.Cached != 1 {
		t.Errorf("unexpected sync output: %+v", out)
	}
	if !client.lastAfter.IsZero() {
		t.Errorf("expected zero cursor on an empty cache, got %s", client.lastAfter)
	}

	// A second sync resumes from the cached activity's date.
	if _, _, err := s.handleSync(context.Background(), &sdk.CallToolRequest{}, syncInput{}); err != nil {
		t.Fatalf("second handleSync: %v", err)
	}
	want := time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC)
	if !client.lastAfter.Equal(want) {
		t.Errorf("cursor = %s, want %s", client.lastAfter, want)
	}
}
