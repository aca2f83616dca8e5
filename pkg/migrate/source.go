package migrate

import (
	"fmt"
	"regexp"
)

// Detection-only patterns over free-form source. These mark the deliberate
// boundary between mechanical and semantic change: import sites and
// programmatic style construction need a human, so they are reported and
// never rewritten.
var (
	legacyImportRe = regexp.MustCompile(
		`(?m)(\bfrom\s+['"]nativewind(?:/[^'"]*)?['"]|\brequire\(\s*['"]nativewind(?:/[^'"]*)?['"]\s*\)|^\s*import\s+['"]nativewind(?:/[^'"]*)?['"])`)
	styleCreateRe = regexp.MustCompile(`\bStyleSheet\.create\s*\(`)
)

// detectSourceText scans any remaining collected file for legacy usage that
// needs manual review.
func detectSourceText(f SourceFile) detectResult {
	var res detectResult
	res.updated = f.Content

	if n := len(legacyImportRe.FindAllStringIndex(f.Content, -1)); n > 0 {
		res.findings = append(res.findings, Finding{
			File:    f.Rel,
			Kind:    KindLegacyImport,
			Message: fmt.Sprintf("%d import(s) of the legacy styling package; switch to uniwind manually", n),
		})
	}
	if n := len(styleCreateRe.FindAllStringIndex(f.Content, -1)); n > 0 {
		res.findings = append(res.findings, Finding{
			File:    f.Rel,
			Kind:    KindProgrammaticStylesheet,
			Message: fmt.Sprintf("%d StyleSheet.create call(s); consider utility classes instead", n),
		})
	}
	return res
}
