package migrate

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText_EmptyReport(t *testing.T) {
	r := &Report{Summary: Summary{Mode: string(ModeNativeWindToUniwind), Root: "/proj"}}
	text := r.RenderText()

	assert.True(t, strings.HasPrefix(text, "NativeWind to Uniwind migration report"))
	assert.Contains(t, text, "No findings.")
	assert.Contains(t, text, "No files would be modified.")
	assert.Contains(t, text, "not transactional")
}

func TestRenderText_SummaryIsValidJSON(t *testing.T) {
	root := legacyProject(t)
	report, err := New(discard()).Run(Request{ProjectRoot: root})
	require.NoError(t, err)

	text := report.RenderText()
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	require.Greater(t, end, start)

	// The first JSON object in the payload is the summary block.
	depth := 0
	summaryEnd := -1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				summaryEnd = i
			}
		}
		if summaryEnd >= 0 {
			break
		}
	}
	require.Greater(t, summaryEnd, start)

	var summary Summary
	require.NoError(t, json.Unmarshal([]byte(text[start:summaryEnd+1]), &summary))
	assert.Equal(t, report.Summary.FindingCount, summary.FindingCount)
	assert.Equal(t, GuideHash(), summary.GuideHash)
}

func TestRenderText_FindingsCap(t *testing.T) {
	r := &Report{}
	for i := 0; i < findingsDisplayCap+25; i++ {
		r.Findings = append(r.Findings, Finding{
			File:    fmt.Sprintf("src/file%03d.tsx", i),
			Kind:    KindLegacyImport,
			Message: "legacy import",
		})
	}
	text := r.RenderText()

	assert.Equal(t, findingsDisplayCap, strings.Count(text, "- [legacy-import-reference]"))
	assert.Contains(t, text, "... and 25 more")
}

func TestRenderText_DiskChanges(t *testing.T) {
	r := &Report{
		Summary: Summary{Apply: true},
		Changes: []Change{
			{File: "global.css", Action: ActionUpdate, Reason: "normalize-stylesheet-header", BeforeHash: "aa", AfterHash: "bb"},
			{File: "nativewind-env.d.ts", Action: ActionDelete, Reason: "delete-legacy-ambient-types", BeforeHash: "cc"},
		},
	}
	text := r.RenderText()

	assert.Contains(t, text, "Applied changes:")
	assert.Contains(t, text, "- update global.css (normalize-stylesheet-header) before=aa after=bb")
	assert.Contains(t, text, "- delete nativewind-env.d.ts (delete-legacy-ambient-types) before=cc")
}

func TestRenderText_VirtualPatchBundle(t *testing.T) {
	r := &Report{
		Virtual: true,
		Patch: Patch{
			Updates: []PatchUpdate{{Path: "global.css", Content: canonicalHeader}},
			Deletes: []PatchDelete{{Path: "nativewind-env.d.ts"}},
		},
	}
	text := r.RenderText()

	assert.Contains(t, text, "Edit bundle")
	idx := strings.Index(text, "{\n  \"updates\"")
	require.GreaterOrEqual(t, idx, 0)

	var patch Patch
	// The bundle runs to the final closing brace before the notes footer.
	end := strings.LastIndex(text, "}")
	require.NoError(t, json.Unmarshal([]byte(text[idx:end+1]), &patch))
	assert.Equal(t, r.Patch, patch)
}

func TestRenderText_VirtualNoChanges(t *testing.T) {
	r := &Report{Virtual: true}
	assert.Contains(t, r.RenderText(), "No changes were returned.")
}
