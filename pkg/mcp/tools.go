package mcp

import "github.com/mark3labs/mcp-go/mcp"

func stringItems() map[string]any {
	return map[string]any{"type": "string"}
}

func migrateProjectTool() mcp.Tool {
	return mcp.NewTool("migrate_project",
		mcp.WithDescription("Scan a project directory for legacy NativeWind usage and optionally apply the mechanical Uniwind migration edits. Dry run by default."),
		mcp.WithString("root",
			mcp.Required(),
			mcp.Description("Project root directory to scan"),
		),
		mcp.WithBoolean("apply",
			mcp.Description("Apply the mechanical edits instead of only reporting them (default false)"),
		),
		mcp.WithNumber("maxFiles",
			mcp.Description("Cap on files scanned, 1 to 20000 (default 5000)"),
		),
		mcp.WithArray("includeExtensions",
			mcp.Description("Override the default scanned extensions"),
			mcp.Items(stringItems()),
		),
		mcp.WithArray("excludeDirNames",
			mcp.Description("Override the default excluded directory names"),
			mcp.Items(stringItems()),
		),
	)
}

func migrateFilesTool() mcp.Tool {
	return mcp.NewTool("migrate_files",
		mcp.WithDescription("Run the NativeWind to Uniwind migration over an in-memory file set. Never touches disk; always returns the computed patch bundle."),
		mcp.WithArray("files",
			mcp.Required(),
			mcp.Description("Files to scan, each {path, content}"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path":    map[string]any{"type": "string"},
					"content": map[string]any{"type": "string"},
				},
				"required": []string{"path", "content"},
			}),
		),
		mcp.WithString("basePath",
			mcp.Description("Display label for the virtual root"),
		),
		mcp.WithNumber("maxFiles",
			mcp.Description("Cap on files scanned, 1 to 20000 (default 5000)"),
		),
		mcp.WithArray("includeExtensions",
			mcp.Description("Override the default scanned extensions"),
			mcp.Items(stringItems()),
		),
		mcp.WithArray("excludeDirNames",
			mcp.Description("Override the default excluded directory names"),
			mcp.Items(stringItems()),
		),
	)
}

func migrationGuideTool() mcp.Tool {
	return mcp.NewTool("get_migration_guide",
		mcp.WithDescription("Return the migration guide the rule catalog is derived from, with its fingerprint."),
	)
}
