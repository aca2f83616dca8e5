package migrate

import (
	"log/slog"
	"path"
	"strings"

	"github.com/styleshift/styleshift/pkg/util"
)

// Engine runs one migration scan per call. Safe to reuse across calls; all
// per-run state lives in the call frame.
type Engine struct {
	logger *slog.Logger
	reader *util.FileReader
}

// New returns an Engine logging through logger. A nil logger falls back to
// slog.Default().
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger, reader: &util.FileReader{}}
}

// Run validates req, collects files, routes each through its detector, and
// materializes approved edits. Request-level failures (bad input, missing
// root, foreign path style) come back as errors with zero side effects. A
// write or delete failure during apply stops further processing; the partial
// report is still returned with the failing file recorded in the summary.
func (e *Engine) Run(req Request) (*Report, error) {
	cfg, err := Validate(req)
	if err != nil {
		return nil, err
	}

	var (
		files   []SourceFile
		skipped []string
	)
	if cfg.Virtual != nil {
		files = CollectVirtual(cfg)
	} else {
		files, skipped, err = CollectDisk(cfg, e.reader, e.logger)
		if err != nil {
			return nil, err
		}
	}

	report := &Report{
		Virtual:      cfg.Virtual != nil,
		SkippedFiles: skipped,
	}
	tr := newTracker(cfg, e.logger)

	var abortedOn string
	var sawStylesheet, sawReplacementAmbient bool
	for _, f := range files {
		base := path.Base(f.Rel)
		switch base {
		case fileGlobalStylesheet:
			sawStylesheet = true
		case fileUniwindAmbient:
			sawReplacementAmbient = true
		}

		detect := detectorFor(f.Rel)
		if detect == nil {
			continue
		}
		res := detect(f)
		report.Findings = append(report.Findings, res.findings...)

		var trackErr error
		switch {
		case res.deleteFile:
			trackErr = tr.remove(f, strings.Join(res.notes, ", "))
		case res.changed:
			trackErr = tr.update(f, res.updated, strings.Join(res.notes, ", "))
		}
		if trackErr != nil {
			e.logger.Error("apply failed, stopping", "file", f.Rel, "error", trackErr)
			abortedOn = f.Rel + ": " + trackErr.Error()
			break
		}
	}

	// Whole-scan invariant, evaluated once after traversal: a global
	// stylesheet without the replacement ambient declarations anywhere in
	// the scanned set.
	if sawStylesheet && !sawReplacementAmbient {
		report.Findings = append(report.Findings, Finding{
			File:    displayRoot(cfg),
			Kind:    KindAmbientTypesMissing,
			Message: fileUniwindAmbient + " not found anywhere in the scanned set; create it so className props type-check",
		})
	}

	report.Changes = tr.applied
	report.Planned = tr.planned
	report.Summary = buildSummary(cfg, len(files), report, abortedOn)
	if cfg.Virtual != nil {
		report.Patch = tr.patch
	}
	return report, nil
}

func displayRoot(cfg *ScanConfig) string {
	if cfg.Virtual != nil {
		if cfg.Virtual.BasePath != "" {
			return cfg.Virtual.BasePath
		}
		return "(in-memory)"
	}
	return cfg.Disk.Root
}
