package migrate

import "strings"

// detectLegacyAmbient handles the legacy ambient declaration file. The file
// carries no migratable content; the whole file is the finding, and the fix
// is deletion.
func detectLegacyAmbient(f SourceFile) detectResult {
	return detectResult{
		updated:    f.Content,
		deleteFile: true,
		notes:      []string{"delete-legacy-ambient-types"},
		findings: []Finding{{
			File:    f.Rel,
			Kind:    KindAmbientTypesPresent,
			Message: "legacy ambient type declarations are superseded by " + fileUniwindAmbient,
		}},
	}
}

// detectThemingConfig reports legacy references inside the theming framework
// config. Theming decisions are not mechanical, so this never edits.
func detectThemingConfig(f SourceFile) detectResult {
	var res detectResult
	res.updated = f.Content

	if !strings.Contains(f.Content, "nativewind") {
		return res
	}
	detail := "references the legacy styling package"
	if strings.Contains(f.Content, "nativewind/preset") {
		detail = "uses the legacy preset helper"
	}
	res.findings = append(res.findings, Finding{
		File:    f.Rel,
		Kind:    KindThemingConfigReference,
		Message: detail + "; port the theme configuration manually",
	})
	return res
}
