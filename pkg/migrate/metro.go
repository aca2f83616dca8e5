package migrate

import (
	"regexp"
	"strings"
)

const (
	legacyMetroPath      = "nativewind/metro"
	replacementMetroPath = "uniwind/metro"
	legacyMetroWrapper   = "withNativeWind"
	replacementWrapper   = "withUniwind"
)

var (
	legacyWrapperRe = regexp.MustCompile(`\bwithNativeWind\b`)
	optionAliasRe   = regexp.MustCompile(`\b(cssEntry|inputPath)(\s*:)`)
	metroDestructRe = regexp.MustCompile(`(const|let|var)(\s*\{\s*)([A-Za-z_$][$\w]*)(\s*\}\s*=\s*require\(\s*['"]uniwind/metro['"]\s*\))`)
)

// metroSteps is the ordered rewrite sequence for the bundler config. Each
// step is independently idempotent; running the whole sequence twice is a
// no-op on the second pass.
var metroSteps = []TransformStep{
	{Name: "rename-import-path", Apply: func(content string) (string, bool) {
		updated := strings.ReplaceAll(content, legacyMetroPath, replacementMetroPath)
		return updated, updated != content
	}},
	{Name: "rename-wrapper-identifier", Apply: func(content string) (string, bool) {
		updated := legacyWrapperRe.ReplaceAllString(content, replacementWrapper)
		return updated, updated != content
	}},
	{Name: "canonicalize-option-keys", Apply: func(content string) (string, bool) {
		updated := optionAliasRe.ReplaceAllString(content, "input$2")
		return updated, updated != content
	}},
	{Name: "normalize-destructured-import", Apply: func(content string) (string, bool) {
		updated := metroDestructRe.ReplaceAllString(content, "${1}${2}"+replacementWrapper+"${4}")
		return updated, updated != content
	}},
}

// detectMetroConfig handles metro.config.js / metro.config.cjs.
func detectMetroConfig(f SourceFile) detectResult {
	var res detectResult
	res.updated = f.Content

	updated, changed, fired := runSteps(f.Content, metroSteps)
	if !changed {
		return res
	}
	res.updated = updated
	res.changed = true
	res.notes = fired
	res.findings = append(res.findings, Finding{
		File:    f.Rel,
		Kind:    KindBundlerConfig,
		Message: "legacy bundler wiring rewritten (" + strings.Join(fired, ", ") + ")",
	})
	return res
}
