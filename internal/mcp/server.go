// Package mcp exposes the aggregation and rendering pipeline as MCP tools
// over stdio, so assistants can query weekly stats or trigger a sync.
package mcp

import (
	"context"

	"runchart/internal/activitylog"
	"runchart/internal/config"
	"runchart/internal/tracker"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Server holds the state for the MCP server.
type Server struct {
	cfg    *config.AppConfig
	client tracker.Client
	store  *activitylog.Store
	mcp    *sdk.Server
}

// NewServer creates a new MCP server and registers the tools.
func NewServer(cfg *config.AppConfig, client tracker.Client) *Server {
	s := &Server{
		cfg:    cfg,
		client: client,
		store:  activitylog.NewStore(),
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "runchart",
			Version: "0.1.0",
		}, nil),
	}
	s.registerTools()
	return s
}

// Run loads the activity cache and starts the stdio loop. It blocks until
// the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	for _, sport := range s.cfg.Sports {
		if err := s.store.Load(s.cfg.CacheDir, sport); err != nil {
			log.Warn().Err(err).Str("sport", sport).Msg("Failed to load activity cache")
		}
	}

	log.Info().Msg("MCP server starting stdio loop")
	return s.mcp.Run(ctx, &sdk.StdioTransport{})
}
