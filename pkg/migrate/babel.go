package migrate

import (
	"fmt"
	"regexp"
	"strings"
)

const legacyBabelPreset = "nativewind/babel"

// The three removal shapes, in precedence order. Each runs globally against
// the text the previous one produced.
var (
	presetOwnLineRe   = regexp.MustCompile(`(?m)^[ \t]*['"]nativewind/babel['"][ \t]*,[ \t]*\r?\n`)
	presetFirstElemRe = regexp.MustCompile(`\[[ \t]*\r?\n?[ \t]*['"]nativewind/babel['"][ \t]*,[ \t]*`)
	presetTrailingRe  = regexp.MustCompile(`,[ \t]*\r?\n?[ \t]*['"]nativewind/babel['"]`)
)

// babelPresetSteps removes the legacy preset literal from a transpiler
// config's presets array. Pure text surgery, no AST.
var babelPresetSteps = []TransformStep{
	{Name: "remove-preset-own-line", Apply: replaceAllStep(presetOwnLineRe, "")},
	{Name: "remove-preset-first-element", Apply: replaceAllStep(presetFirstElemRe, "[")},
	{Name: "remove-preset-trailing", Apply: replaceAllStep(presetTrailingRe, "")},
}

// replaceAllStep wraps a global regex substitution as an idempotent step.
func replaceAllStep(re *regexp.Regexp, replacement string) func(string) (string, bool) {
	return func(content string) (string, bool) {
		updated := re.ReplaceAllString(content, replacement)
		return updated, updated != content
	}
}

// detectBabelConfig handles babel.config.js / babel.config.cjs.
func detectBabelConfig(f SourceFile) detectResult {
	var res detectResult
	res.updated = f.Content

	if !strings.Contains(f.Content, legacyBabelPreset) {
		return res
	}

	updated, changed, fired := runSteps(f.Content, babelPresetSteps)
	res.updated = updated
	res.changed = changed
	res.notes = fired

	msg := fmt.Sprintf("legacy preset %q found in presets array", legacyBabelPreset)
	if changed {
		msg += "; removed (" + strings.Join(fired, ", ") + ")"
	} else {
		msg += "; no removal pattern matched, review manually"
	}
	res.findings = append(res.findings, Finding{
		File:    f.Rel,
		Kind:    KindBuildConfigArray,
		Message: msg,
	})
	return res
}
