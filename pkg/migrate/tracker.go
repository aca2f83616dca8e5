package migrate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a fast content digest used for change auditing and
// idempotence checks. Not collision-resistant in the cryptographic sense;
// nothing here depends on that.
func Fingerprint(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// tracker materializes detector decisions. In disk mode with apply it writes
// and deletes for real; in dry runs it only plans, recording the would-be
// fingerprints; in virtual mode it always synthesizes a patch and never
// touches disk.
type tracker struct {
	cfg     *ScanConfig
	logger  *slog.Logger
	applied []Change
	planned []Change
	patch   Patch
}

func newTracker(cfg *ScanConfig, logger *slog.Logger) *tracker {
	return &tracker{cfg: cfg, logger: logger}
}

// update records a rewrite of f to newContent. The returned error is
// non-nil only for a failed disk write, which aborts the run.
func (t *tracker) update(f SourceFile, newContent, reason string) error {
	change := Change{
		File:       f.Rel,
		Action:     ActionUpdate,
		Reason:     reason,
		BeforeHash: Fingerprint(f.Content),
		AfterHash:  Fingerprint(newContent),
		NewContent: newContent,
	}

	if t.cfg.Virtual != nil {
		t.applied = append(t.applied, change)
		t.patch.Updates = append(t.patch.Updates, PatchUpdate{Path: f.Path, Content: newContent})
		return nil
	}
	if !t.cfg.Apply {
		t.planned = append(t.planned, change)
		return nil
	}
	if !t.withinRoot(f.Path) {
		t.logger.Warn("refusing to write outside the scan root", "path", f.Path)
		return nil
	}
	if err := os.WriteFile(f.Path, []byte(newContent), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	t.applied = append(t.applied, change)
	return nil
}

// remove records a deletion of f.
func (t *tracker) remove(f SourceFile, reason string) error {
	change := Change{
		File:       f.Rel,
		Action:     ActionDelete,
		Reason:     reason,
		BeforeHash: Fingerprint(f.Content),
	}

	if t.cfg.Virtual != nil {
		t.applied = append(t.applied, change)
		t.patch.Deletes = append(t.patch.Deletes, PatchDelete{Path: f.Path})
		return nil
	}
	if !t.cfg.Apply {
		t.planned = append(t.planned, change)
		return nil
	}
	if !t.withinRoot(f.Path) {
		t.logger.Warn("refusing to delete outside the scan root", "path", f.Path)
		return nil
	}
	if err := os.Remove(f.Path); err != nil {
		return fmt.Errorf("delete %s: %w", f.Path, err)
	}
	t.applied = append(t.applied, change)
	return nil
}

// withinRoot reports whether p resolves under the disk root. Writes and
// deletes outside the root are never issued.
func (t *tracker) withinRoot(p string) bool {
	rel, err := filepath.Rel(t.cfg.Disk.Root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
