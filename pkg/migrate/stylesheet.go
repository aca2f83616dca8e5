package migrate

import (
	"regexp"
	"strings"
)

// The canonical two-line header every migrated global stylesheet starts
// with: the base utility framework, then the replacement library.
const (
	importTailwind  = "@import 'tailwindcss';"
	importUniwind   = "@import 'uniwind';"
	canonicalHeader = importTailwind + "\n" + importUniwind + "\n\n"
)

var (
	legacyDirectiveRe = regexp.MustCompile(`(?m)^[ \t]*@tailwind[ \t]+(base|components|utilities)[ \t]*;[ \t]*\r?\n?`)
	legacyCSSImportRe = regexp.MustCompile(`(?m)^[ \t]*@import[ \t]+['"]nativewind(?:/[^'"]*)?['"][ \t]*;[ \t]*\r?\n?`)
	tailwindImportRe  = regexp.MustCompile(`(?m)^[ \t]*@import[ \t]+['"]tailwindcss['"][ \t]*;[ \t]*\r?\n?`)
	uniwindImportRe   = regexp.MustCompile(`(?m)^[ \t]*@import[ \t]+['"]uniwind['"][ \t]*;[ \t]*\r?\n?`)
)

// detectStylesheet normalizes the global entry stylesheet: legacy at-rules
// and bare legacy imports go away, any stray copies of the canonical imports
// are de-duplicated, and the canonical header is re-inserted at the top
// followed by a blank line and the remaining content.
func detectStylesheet(f SourceFile) detectResult {
	var res detectResult
	res.updated = f.Content

	body := legacyDirectiveRe.ReplaceAllString(f.Content, "")
	body = legacyCSSImportRe.ReplaceAllString(body, "")
	body = tailwindImportRe.ReplaceAllString(body, "")
	body = uniwindImportRe.ReplaceAllString(body, "")
	body = strings.TrimLeft(body, "\r\n")

	updated := canonicalHeader + body
	if updated == f.Content {
		return res
	}

	res.updated = updated
	res.changed = true
	res.notes = []string{"normalize-stylesheet-header"}
	res.findings = append(res.findings, Finding{
		File:    f.Rel,
		Kind:    KindStylesheetHeader,
		Message: "stylesheet header rewritten to the canonical tailwindcss + uniwind imports",
	})
	return res
}
