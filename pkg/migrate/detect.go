package migrate

import "path"

// detectResult is the output of one detector over one file. Detectors are
// pure: they never touch the filesystem, they only propose.
type detectResult struct {
	updated    string
	changed    bool
	deleteFile bool
	notes      []string
	findings   []Finding
}

// detectorFor routes a file to exactly one detector: exact filename first,
// then extension. Returns nil for files nothing inspects (e.g. the
// replacement ambient declaration, which is only tracked for presence).
func detectorFor(rel string) func(SourceFile) detectResult {
	switch path.Base(rel) {
	case fileBabelConfig, fileBabelConfigCJS:
		return detectBabelConfig
	case fileMetroConfig, fileMetroConfigCJS:
		return detectMetroConfig
	case fileTailwindConfig, fileTailwindCfgCJS:
		return detectThemingConfig
	case fileLegacyAmbient:
		return detectLegacyAmbient
	case fileUniwindAmbient:
		return nil
	case fileGlobalStylesheet:
		return detectStylesheet
	default:
		return detectSourceText
	}
}
