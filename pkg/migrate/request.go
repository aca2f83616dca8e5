package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Mode selects the migration rule set. Only one mode exists today.
type Mode string

const ModeNativeWindToUniwind Mode = "nativewind-to-uniwind"

// Sentinel errors for the request taxonomy. All are reported to the caller
// as messages, never panics.
var (
	ErrInvalidRequest   = errors.New("invalid migration request")
	ErrRootNotFound     = errors.New("project root not found")
	ErrPlatformMismatch = errors.New("project root path style does not match this platform")
)

const (
	defaultMaxFiles = 5000
	maxFilesCeiling = 20000
	maxVirtualPath  = 1024
)

// DefaultExtensions covers source, markup, stylesheet, and manifest-like
// files.
var DefaultExtensions = []string{
	".ts", ".tsx", ".js", ".jsx", ".cjs", ".mjs", ".css", ".html", ".json",
}

// DefaultExcludedDirs covers dependency caches, version control, build
// output, platform-native project directories, and editor caches.
var DefaultExcludedDirs = []string{
	"node_modules", ".git", ".svn", "dist", "build", "out", ".next",
	"coverage", "ios", "android", ".expo", ".vscode", ".idea",
}

// Request is the loosely-typed input accepted from the CLI and the MCP
// surface. When Files is non-empty the request is virtual and ProjectRoot is
// ignored entirely.
type Request struct {
	ProjectRoot       string        `json:"projectRoot,omitempty"`
	Files             []VirtualFile `json:"files,omitempty"`
	BasePath          string        `json:"basePath,omitempty"`
	Apply             bool          `json:"apply,omitempty"`
	MaxFiles          int           `json:"maxFiles,omitempty"`
	IncludeExtensions []string      `json:"includeExtensions,omitempty"`
	ExcludeDirNames   []string      `json:"excludeDirNames,omitempty"`
	Mode              Mode          `json:"mode,omitempty"`
}

// DiskSource drives a real directory walk.
type DiskSource struct {
	Root string
}

// VirtualSource drives an in-memory scan. BasePath is a display-only label.
type VirtualSource struct {
	Files    []VirtualFile
	BasePath string
}

// ScanConfig is the strictly-typed form of a validated Request. Exactly one
// of Disk/Virtual is non-nil.
type ScanConfig struct {
	Disk       *DiskSource
	Virtual    *VirtualSource
	Apply      bool
	MaxFiles   int
	Extensions map[string]bool
	Excluded   map[string]bool
	Mode       Mode
}

var windowsPathRe = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// Validate constrains a Request into a ScanConfig. All failures come back as
// descriptive errors wrapping one of the sentinel errors above.
func Validate(req Request) (*ScanConfig, error) {
	cfg := &ScanConfig{
		Apply:    req.Apply,
		MaxFiles: req.MaxFiles,
		Mode:     req.Mode,
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeNativeWindToUniwind
	}
	if cfg.Mode != ModeNativeWindToUniwind {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, req.Mode)
	}

	if cfg.MaxFiles == 0 {
		cfg.MaxFiles = defaultMaxFiles
	}
	if cfg.MaxFiles < 1 || cfg.MaxFiles > maxFilesCeiling {
		return nil, fmt.Errorf("%w: maxFiles must be in [1, %d], got %d",
			ErrInvalidRequest, maxFilesCeiling, req.MaxFiles)
	}

	cfg.Extensions = toLowerSet(req.IncludeExtensions, DefaultExtensions)
	cfg.Excluded = toLowerSet(req.ExcludeDirNames, DefaultExcludedDirs)

	// A non-empty virtual file list always wins; disk is never touched.
	if len(req.Files) > 0 {
		for i, f := range req.Files {
			if f.Path == "" {
				return nil, fmt.Errorf("%w: files[%d] has an empty path", ErrInvalidRequest, i)
			}
			if len(f.Path) > maxVirtualPath {
				return nil, fmt.Errorf("%w: files[%d] path exceeds %d bytes",
					ErrInvalidRequest, i, maxVirtualPath)
			}
		}
		cfg.Virtual = &VirtualSource{Files: req.Files, BasePath: req.BasePath}
		return cfg, nil
	}

	root := strings.TrimSpace(req.ProjectRoot)
	if root == "" {
		return nil, fmt.Errorf("%w: either projectRoot or files must be supplied", ErrInvalidRequest)
	}
	if err := checkPlatformPath(root); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot resolve %q: %v", ErrInvalidRequest, root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, abs)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, abs)
	}
	cfg.Disk = &DiskSource{Root: abs}
	return cfg, nil
}

// checkPlatformPath short-circuits when the root is written in the path
// style of a different operating system, with remediation guidance instead
// of a silent stat failure.
func checkPlatformPath(root string) error {
	if runtime.GOOS != "windows" && windowsPathRe.MatchString(root) {
		return fmt.Errorf("%w: %q is a Windows-style path but this process runs on %s; "+
			"re-run with a native path, or pass the project as an in-memory file set",
			ErrPlatformMismatch, root, runtime.GOOS)
	}
	if runtime.GOOS == "windows" && strings.HasPrefix(root, "/") && !windowsPathRe.MatchString(root) {
		return fmt.Errorf("%w: %q is a POSIX-style path but this process runs on windows; "+
			"re-run with a native path, or pass the project as an in-memory file set",
			ErrPlatformMismatch, root)
	}
	return nil
}

func toLowerSet(supplied, defaults []string) map[string]bool {
	src := defaults
	if len(supplied) > 0 {
		src = supplied
	}
	set := make(map[string]bool, len(src))
	for _, s := range src {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	return set
}
