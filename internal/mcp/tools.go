package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"runchart/internal/calweek"
	"runchart/internal/chart"
	"runchart/internal/stats"

	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

type weeklyStatsInput struct {
	Weeks int    `json:"weeks,omitempty"`
	Today string `json:"today,omitempty"`
	Sport string `json:"sport,omitempty"`
}

type syncInput struct {
	Sport string `json:"sport,omitempty"`
}

type syncOutput struct {
	Sport   string `json:"sport"`
	Fetched int    `json:"fetched"`
	Cached  int    `json:"cached"`
}

func (s *Server) registerTools() {
	statsSchema, err := jsonschema.For[weeklyStatsInput](nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to derive weekly_stats schema")
	}
	statsSchema.Properties["weeks"].Description = "Trailing window length in calendar weeks (default: configured CHART_WEEKS)"
	statsSchema.Properties["today"].Description = "Reference date YYYY-MM-DD (default: the current date)"
	statsSchema.Properties["sport"].Description = "Sport type partition of the cache (default: configured SPORT_TYPE)"

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name: "weekly_stats",
		Description: "Aggregate cached activities into a weekly distance series with summary statistics. " +
			"The current (partial) week is reported separately and excluded from total/average/maximum.",
		InputSchema: statsSchema,
	}, s.handleWeeklyStats)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "sync_activities",
		Description: "Fetch new activities from the tracker API into the local cache, starting after the latest cached activity.",
	}, s.handleSync)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "render_chart",
		Description: "Render the weekly distance chart as SVG via gnuplot. Fails with a rendering-unavailable error when gnuplot is missing.",
	}, s.handleRenderChart)
}

// resolve applies the configured defaults to the per-call parameters.
func (s *Server) resolve(sport, today string, weeks int) (string, time.Time, int, error) {
	if sport == "" {
		sport = s.cfg.Sports[0]
	}
	if weeks <= 0 {
		weeks = s.cfg.Weeks
	}

	day := calweek.Date(time.Now())
	if today != "" {
		parsed, err := time.Parse("2006-01-02", today)
		if err != nil {
			return "", time.Time{}, 0, fmt.Errorf("invalid today %q: %w", today, err)
		}
		day = parsed
	}
	return sport, day, weeks, nil
}

func textResult(text string) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: text}},
	}
}

func (s *Server) handleWeeklyStats(_ context.Context, _ *sdk.CallToolRequest, in weeklyStatsInput) (*sdk.CallToolResult, any, error) {
	sport, today, weeks, err := s.resolve(in.Sport, in.Today, in.Weeks)
	if err != nil {
		return nil, nil, err
	}

	result := stats.Weekly(s.store.All(sport), weeks, today)
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding stats: %w", err)
	}

	log.Debug().Str("sport", sport).Int("weeks", weeks).Msg("Computed weekly stats for MCP client")
	return textResult(string(payload)), nil, nil
}

func (s *Server) handleSync(ctx context.Context, _ *sdk.CallToolRequest, in syncInput) (*sdk.CallToolResult, syncOutput, error) {
	sport := in.Sport
	if sport == "" {
		sport = s.cfg.Sports[0]
	}

	activities, err := s.client.Activities(ctx, s.store.LatestStart(sport))
	if err != nil {
		return nil, syncOutput{}, fmt.Errorf("sync failed: %w", err)
	}

	s.store.Append(sport, activities)
	if err := s.store.Save(s.cfg.CacheDir, sport); err != nil {
		return nil, syncOutput{}, fmt.Errorf("saving cache: %w", err)
	}

	return nil, syncOutput{Sport: sport, Fetched: len(activities), Cached: s.store.Count(sport)}, nil
}

func (s *Server) handleRenderChart(ctx context.Context, _ *sdk.CallToolRequest, in weeklyStatsInput) (*sdk.CallToolResult, any, error) {
	sport, today, weeks, err := s.resolve(in.Sport, in.Today, in.Weeks)
	if err != nil {
		return nil, nil, err
	}

	result := stats.Weekly(s.store.All(sport), weeks, today)
	script, err := chart.NewScript(result.Labels, result.Values, result.Average, chart.DefaultCanvas(), filepath.Join(s.cfg.OutputDir, "weekly.dat"))
	if err != nil {
		return nil, nil, err
	}

	renderer := chart.NewRenderer(s.cfg.GnuplotPath, s.cfg.ChartTimeout)
	svg, err := renderer.Render(ctx, script)
	if err != nil {
		return nil, nil, err
	}

	return textResult(svg), nil, nil
}
