// Package migrate implements the NativeWind to Uniwind source-migration
// engine: file discovery, a fixed pipeline of detectors, mechanically safe
// rewrites, and change auditing over either a real project directory or an
// in-memory virtual file set.
package migrate

// FindingKind classifies an observation made during a scan.
type FindingKind string

const (
	// KindLegacyImport is an import or require of the legacy styling package.
	KindLegacyImport FindingKind = "legacy-import-reference"
	// KindBuildConfigArray is the legacy preset string inside a transpiler
	// plugin array.
	KindBuildConfigArray FindingKind = "legacy-build-config-array"
	// KindBundlerConfig is legacy wiring inside the bundler config.
	KindBundlerConfig FindingKind = "legacy-bundler-config"
	// KindAmbientTypesPresent means the legacy ambient declaration file exists.
	KindAmbientTypesPresent FindingKind = "legacy-ambient-types-present"
	// KindAmbientTypesMissing means the replacement ambient declaration file
	// was never seen even though the global stylesheet was.
	KindAmbientTypesMissing FindingKind = "replacement-ambient-types-missing"
	// KindProgrammaticStylesheet is a StyleSheet.create call site.
	KindProgrammaticStylesheet FindingKind = "programmatic-stylesheet-usage"
	// KindThemingConfigReference is a legacy reference inside the theming
	// framework config.
	KindThemingConfigReference FindingKind = "build-tool-config-reference"
	// KindStylesheetHeader means the global stylesheet header needs rewriting.
	KindStylesheetHeader FindingKind = "css-header-needs-normalization"
)

// AllFindingKinds lists every kind the engine can emit, in report order.
var AllFindingKinds = []FindingKind{
	KindLegacyImport,
	KindBuildConfigArray,
	KindBundlerConfig,
	KindAmbientTypesPresent,
	KindAmbientTypesMissing,
	KindProgrammaticStylesheet,
	KindThemingConfigReference,
	KindStylesheetHeader,
}

// Finding is an observation about one file. Findings never mutate state; a
// finding may or may not have a companion Change.
type Finding struct {
	File    string      `json:"file"`
	Kind    FindingKind `json:"kind"`
	Message string      `json:"message"`
}

// ChangeAction says what happens to a file.
type ChangeAction string

const (
	ActionUpdate ChangeAction = "update"
	ActionDelete ChangeAction = "delete"
)

// Change records one concrete edit, either applied to disk or returned as a
// patch in virtual mode. BeforeHash/AfterHash are content fingerprints used
// for auditing; AfterHash is empty for deletes.
type Change struct {
	File       string       `json:"file"`
	Action     ChangeAction `json:"action"`
	Reason     string       `json:"reason"`
	BeforeHash string       `json:"beforeHash"`
	AfterHash  string       `json:"afterHash,omitempty"`
	NewContent string       `json:"-"`
}

// VirtualFile is one entry of an in-memory project snapshot. Path is a
// logical label and need not exist on disk.
type VirtualFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// PatchUpdate is one rewritten file in a virtual-mode patch payload.
type PatchUpdate struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// PatchDelete is one removed file in a virtual-mode patch payload.
type PatchDelete struct {
	Path string `json:"path"`
}

// Patch is the mechanically consumable edit bundle returned in virtual mode.
type Patch struct {
	Updates []PatchUpdate `json:"updates"`
	Deletes []PatchDelete `json:"deletes"`
}

// Summary is the machine-readable header of a report.
type Summary struct {
	Mode           string              `json:"mode"`
	Root           string              `json:"root"`
	Apply          bool                `json:"apply"`
	FilesScanned   int                 `json:"filesScanned"`
	GuideHash      string              `json:"guideHash"`
	FindingCount   int                 `json:"findingCount"`
	ChangeCount    int                 `json:"changeCount"`
	FindingsByKind map[FindingKind]int `json:"findingsByKind"`
	AbortedOn      string              `json:"abortedOn,omitempty"`
}

// Report is the full result of one engine run. Changes holds edits that
// were actually materialized (disk writes/deletes, or the virtual-mode
// patch); Planned holds the would-be edits of a disk-mode dry run.
type Report struct {
	Summary  Summary
	Findings []Finding
	Changes  []Change
	Planned  []Change
	Virtual  bool
	// Patch is populated in virtual mode only: the caller applies it, the
	// engine never writes.
	Patch Patch
	// SkippedFiles lists files that could not be read mid-scan.
	SkippedFiles []string
}
