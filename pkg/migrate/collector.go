package migrate

import (
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/styleshift/styleshift/pkg/util"
)

// Exact filenames routed to detectors regardless of the scanned-extension
// set.
const (
	fileBabelConfig      = "babel.config.js"
	fileBabelConfigCJS   = "babel.config.cjs"
	fileMetroConfig      = "metro.config.js"
	fileMetroConfigCJS   = "metro.config.cjs"
	fileTailwindConfig   = "tailwind.config.js"
	fileTailwindCfgCJS   = "tailwind.config.cjs"
	fileLegacyAmbient    = "nativewind-env.d.ts"
	fileUniwindAmbient   = "uniwind-env.d.ts"
	fileGlobalStylesheet = "global.css"
)

var configCandidates = map[string]bool{
	fileBabelConfig:      true,
	fileBabelConfigCJS:   true,
	fileMetroConfig:      true,
	fileMetroConfigCJS:   true,
	fileTailwindConfig:   true,
	fileTailwindCfgCJS:   true,
	fileLegacyAmbient:    true,
	fileUniwindAmbient:   true,
	fileGlobalStylesheet: true,
}

// SourceFile is one collected file with its content loaded. Path is the
// absolute disk path in disk mode or the supplied logical label in virtual
// mode; Rel is the slash-separated form used for dispatch and display.
type SourceFile struct {
	Path    string
	Rel     string
	Content string
}

// exclusionPatterns turns excluded directory names into doublestar patterns
// that match the name as any path segment.
func exclusionPatterns(excluded map[string]bool) []string {
	patterns := make([]string, 0, len(excluded)*2)
	for name := range excluded {
		if !doublestar.ValidatePattern(name) {
			continue
		}
		patterns = append(patterns, "**/"+name, "**/"+name+"/**", name, name+"/**")
	}
	sort.Strings(patterns)
	return patterns
}

func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.PathMatch(p, rel); ok {
			return true
		}
	}
	return false
}

// retained reports whether a file with this base name enters the detector
// pipeline: config candidates by exact name, everything else by extension.
func retained(base string, extensions map[string]bool) bool {
	if configCandidates[base] {
		return true
	}
	return extensions[strings.ToLower(path.Ext(base))]
}

// CollectDisk walks cfg.Disk.Root depth-first, pruning excluded directories
// and stopping once MaxFiles files have been retained. A file that becomes
// unreadable between listing and read is skipped, not fatal; its path is
// returned in skipped.
func CollectDisk(cfg *ScanConfig, reader *util.FileReader, logger *slog.Logger) (files []SourceFile, skipped []string, err error) {
	root := cfg.Disk.Root
	patterns := exclusionPatterns(cfg.Excluded)

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == root {
				return walkErr
			}
			logger.Warn("skipping unreadable entry", "path", p, "error", walkErr)
			skipped = append(skipped, p)
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			rel = p
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if p != root && matchesAny(patterns, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesAny(patterns, rel) {
			return nil
		}
		if !retained(d.Name(), cfg.Extensions) {
			return nil
		}

		content, readErr := reader.ReadAll(p)
		if readErr != nil {
			logger.Warn("skipping unreadable file", "path", p, "error", readErr)
			skipped = append(skipped, p)
			return nil
		}
		files = append(files, SourceFile{Path: p, Rel: rel, Content: string(content)})
		if len(files) >= cfg.MaxFiles {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}
	return files, skipped, nil
}

// CollectVirtual filters the supplied file list with the same exclusion and
// retention semantics as the disk walk, preserving the caller's order and
// truncating at MaxFiles.
func CollectVirtual(cfg *ScanConfig) []SourceFile {
	patterns := exclusionPatterns(cfg.Excluded)
	var files []SourceFile
	for _, vf := range cfg.Virtual.Files {
		// Virtual paths are logical labels; normalize either separator style.
		rel := path.Clean(strings.ReplaceAll(vf.Path, `\`, "/"))
		rel = strings.TrimPrefix(rel, "./")
		if matchesAny(patterns, rel) {
			continue
		}
		if !retained(path.Base(rel), cfg.Extensions) {
			continue
		}
		files = append(files, SourceFile{Path: vf.Path, Rel: rel, Content: vf.Content})
		if len(files) >= cfg.MaxFiles {
			break
		}
	}
	return files
}
