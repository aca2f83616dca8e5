// Package mcp exposes the migration engine over the Model Context Protocol
// so coding agents can run scans and consume virtual-mode patches directly.
package mcp

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mark3labs/mcp-go/server"

	"github.com/styleshift/styleshift/pkg/mcplog"
	"github.com/styleshift/styleshift/pkg/migrate"
)

const serverVersion = "0.1.0-dev"

// reportCacheSize bounds the dry-run report cache. Entries are whole text
// reports, so keep this small.
const reportCacheSize = 32

// Server wires the migration engine into an MCP stdio server.
type Server struct {
	mcpServer *server.MCPServer
	engine    *migrate.Engine
	logger    *mcplog.Logger // nil disables tool-call logging

	// dryRunCache memoizes dry-run disk-mode reports keyed by request
	// fingerprint. Any apply run purges it: the filesystem it described is
	// gone.
	dryRunCache *lru.Cache[string, string]
}

// NewServer creates an MCP server around engine. callLog may be nil.
func NewServer(engine *migrate.Engine, callLog *mcplog.Logger) *Server {
	s := &Server{engine: engine, logger: callLog}

	cache, err := lru.New[string, string](reportCacheSize)
	if err == nil {
		s.dryRunCache = cache
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if s.logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("styleshift", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: migrateProjectTool(), Handler: s.handleMigrateProject},
		server.ServerTool{Tool: migrateFilesTool(), Handler: s.handleMigrateFiles},
		server.ServerTool{Tool: migrationGuideTool(), Handler: s.handleMigrationGuide},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
