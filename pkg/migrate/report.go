package migrate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// findingsDisplayCap bounds the human-readable listings; the virtual-mode
// patch payload is never capped because machines consume it.
const findingsDisplayCap = 100

const reportNotes = `Notes:
- Only mechanically safe edits are applied; everything ambiguous is reported for manual review.
- Re-running the migration on an already-migrated project makes no further changes.
- Apply runs are not transactional: on a mid-run failure, earlier rewrites stay in place.`

func buildSummary(cfg *ScanConfig, filesScanned int, r *Report, abortedOn string) Summary {
	byKind := make(map[FindingKind]int, len(AllFindingKinds))
	for _, f := range r.Findings {
		byKind[f.Kind]++
	}
	return Summary{
		Mode:           string(cfg.Mode),
		Root:           displayRoot(cfg),
		Apply:          cfg.Apply,
		FilesScanned:   filesScanned,
		GuideHash:      GuideHash(),
		FindingCount:   len(r.Findings),
		ChangeCount:    len(r.Changes) + len(r.Planned),
		FindingsByKind: byKind,
		AbortedOn:      abortedOn,
	}
}

// RenderText composes the full response payload: label, JSON summary,
// findings, changes (or the virtual-mode edit bundle), and the fixed notes
// footer.
func (r *Report) RenderText() string {
	var b strings.Builder
	b.WriteString("NativeWind to Uniwind migration report\n\n")

	summaryJSON, err := json.MarshalIndent(r.Summary, "", "  ")
	if err != nil {
		summaryJSON = []byte(`{"error":"summary serialization failed"}`)
	}
	b.Write(summaryJSON)
	b.WriteString("\n\n")

	writeFindings(&b, r.Findings)
	b.WriteString("\n")
	if r.Virtual {
		writePatch(&b, r)
	} else {
		writeChanges(&b, r)
	}

	b.WriteString("\n")
	b.WriteString(reportNotes)
	b.WriteString("\n")
	return b.String()
}

func writeFindings(b *strings.Builder, findings []Finding) {
	if len(findings) == 0 {
		b.WriteString("No findings.\n")
		return
	}
	b.WriteString("Findings:\n")
	shown := findings
	if len(shown) > findingsDisplayCap {
		shown = shown[:findingsDisplayCap]
	}
	for _, f := range shown {
		fmt.Fprintf(b, "- [%s] %s: %s\n", f.Kind, f.File, f.Message)
	}
	if rest := len(findings) - len(shown); rest > 0 {
		fmt.Fprintf(b, "... and %d more\n", rest)
	}
}

func writeChanges(b *strings.Builder, r *Report) {
	changes := r.Changes
	if !r.Summary.Apply {
		changes = r.Planned
	}
	if len(changes) == 0 {
		if r.Summary.Apply {
			b.WriteString("No files modified.\n")
		} else {
			b.WriteString("No files would be modified.\n")
		}
		return
	}
	if r.Summary.Apply {
		b.WriteString("Applied changes:\n")
	} else {
		b.WriteString("Planned changes (dry run):\n")
	}
	shown := changes
	if len(shown) > findingsDisplayCap {
		shown = shown[:findingsDisplayCap]
	}
	for _, c := range shown {
		if c.Action == ActionDelete {
			fmt.Fprintf(b, "- delete %s (%s) before=%s\n", c.File, c.Reason, c.BeforeHash)
			continue
		}
		fmt.Fprintf(b, "- update %s (%s) before=%s after=%s\n", c.File, c.Reason, c.BeforeHash, c.AfterHash)
	}
	if rest := len(changes) - len(shown); rest > 0 {
		fmt.Fprintf(b, "... and %d more\n", rest)
	}
}

func writePatch(b *strings.Builder, r *Report) {
	if len(r.Patch.Updates) == 0 && len(r.Patch.Deletes) == 0 {
		b.WriteString("No changes were returned.\n")
		return
	}
	b.WriteString("Edit bundle (apply these patches to your copy):\n")
	patchJSON, err := json.MarshalIndent(r.Patch, "", "  ")
	if err != nil {
		b.WriteString(`{"error":"patch serialization failed"}` + "\n")
		return
	}
	b.Write(patchJSON)
	b.WriteString("\n")
}
