package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/styleshift/styleshift/pkg/migrate"
)

func (s *Server) handleMigrateProject(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := request.RequireString("root")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := migrate.Request{
		ProjectRoot:       root,
		Apply:             request.GetBool("apply", false),
		MaxFiles:          request.GetInt("maxFiles", 0),
		IncludeExtensions: request.GetStringSlice("includeExtensions", nil),
		ExcludeDirNames:   request.GetStringSlice("excludeDirNames", nil),
	}

	key := requestKey(req)
	if !req.Apply && s.dryRunCache != nil {
		if text, ok := s.dryRunCache.Get(key); ok {
			return mcp.NewToolResultText(text), nil
		}
	}

	report, err := s.engine.Run(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text := report.RenderText()

	if s.dryRunCache != nil {
		if req.Apply {
			// The cached reports describe a filesystem this run just changed.
			s.dryRunCache.Purge()
		} else {
			s.dryRunCache.Add(key, text)
		}
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleMigrateFiles(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	files, err := parseVirtualFiles(request.GetArguments()["files"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := migrate.Request{
		Files:             files,
		BasePath:          request.GetString("basePath", ""),
		MaxFiles:          request.GetInt("maxFiles", 0),
		IncludeExtensions: request.GetStringSlice("includeExtensions", nil),
		ExcludeDirNames:   request.GetStringSlice("excludeDirNames", nil),
	}

	report, err := s.engine.Run(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(report.RenderText()), nil
}

func (s *Server) handleMigrationGuide(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("Guide fingerprint: %s\n\n%s", migrate.GuideHash(), migrate.Guide())
	return mcp.NewToolResultText(text), nil
}

// parseVirtualFiles decodes the loosely-typed files argument.
func parseVirtualFiles(raw any) ([]migrate.VirtualFile, error) {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("files must be a non-empty array of {path, content}")
	}
	files := make([]migrate.VirtualFile, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("files[%d] must be an object with path and content", i)
		}
		path, _ := entry["path"].(string)
		content, _ := entry["content"].(string)
		if path == "" {
			return nil, fmt.Errorf("files[%d] has an empty path", i)
		}
		files = append(files, migrate.VirtualFile{Path: path, Content: content})
	}
	return files, nil
}

// requestKey fingerprints a request for the dry-run cache.
func requestKey(req migrate.Request) string {
	b, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return migrate.Fingerprint(string(b))
}
