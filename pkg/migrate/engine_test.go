package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fixtureBabel = `module.exports = { presets: ['babel-preset-expo', 'nativewind/babel'] };`
	fixtureMetro = `const { withNativeWind } = require('nativewind/metro');
module.exports = withNativeWind(getDefaultConfig(__dirname), { cssEntry: './global.css' });
`
	fixtureTailwind = `module.exports = { presets: [require('nativewind/preset')] };`
	fixtureCSS      = "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n.btn{color:red}"
	fixtureAmbient  = `/// <reference types="nativewind/types" />`
	fixtureApp      = `import { styled } from 'nativewind';
const styles = StyleSheet.create({ box: { flex: 1 } });
`
)

// legacyProject writes a small project that exercises every detector.
func legacyProject(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	writeFile(t, tmp, "babel.config.js", fixtureBabel)
	writeFile(t, tmp, "metro.config.js", fixtureMetro)
	writeFile(t, tmp, "tailwind.config.js", fixtureTailwind)
	writeFile(t, tmp, "global.css", fixtureCSS)
	writeFile(t, tmp, "nativewind-env.d.ts", fixtureAmbient)
	writeFile(t, tmp, "src/App.tsx", fixtureApp)
	writeFile(t, tmp, "node_modules/nativewind/index.js", "module.exports = require('nativewind/babel');")
	return tmp
}

func kindsOf(findings []Finding) map[FindingKind]int {
	out := map[FindingKind]int{}
	for _, f := range findings {
		out[f.Kind]++
	}
	return out
}

func TestEngineRun_DryRunReportsWithoutTouchingDisk(t *testing.T) {
	root := legacyProject(t)
	report, err := New(discard()).Run(Request{ProjectRoot: root})
	require.NoError(t, err)

	assert.False(t, report.Virtual)
	assert.Empty(t, report.Changes, "dry run materializes nothing")
	assert.NotEmpty(t, report.Planned)
	assert.Equal(t, len(report.Planned), report.Summary.ChangeCount)

	// Every detector category fires on the fixture project.
	kinds := kindsOf(report.Findings)
	assert.Equal(t, 1, kinds[KindBuildConfigArray])
	assert.Equal(t, 1, kinds[KindBundlerConfig])
	assert.Equal(t, 1, kinds[KindThemingConfigReference])
	assert.Equal(t, 1, kinds[KindStylesheetHeader])
	assert.Equal(t, 1, kinds[KindAmbientTypesPresent])
	assert.Equal(t, 1, kinds[KindAmbientTypesMissing])
	assert.Equal(t, 1, kinds[KindLegacyImport])
	assert.Equal(t, 1, kinds[KindProgrammaticStylesheet])

	// Dry-run purity: everything still on disk, byte for byte.
	for name, want := range map[string]string{
		"babel.config.js":     fixtureBabel,
		"metro.config.js":     fixtureMetro,
		"global.css":          fixtureCSS,
		"nativewind-env.d.ts": fixtureAmbient,
	} {
		data, readErr := os.ReadFile(filepath.Join(root, name))
		require.NoError(t, readErr)
		assert.Equal(t, want, string(data), name)
	}
}

func TestEngineRun_ApplyRewritesProject(t *testing.T) {
	root := legacyProject(t)
	report, err := New(discard()).Run(Request{ProjectRoot: root, Apply: true})
	require.NoError(t, err)

	babel, err := os.ReadFile(filepath.Join(root, "babel.config.js"))
	require.NoError(t, err)
	assert.Equal(t, `module.exports = { presets: ['babel-preset-expo'] };`, string(babel))

	metro, err := os.ReadFile(filepath.Join(root, "metro.config.js"))
	require.NoError(t, err)
	assert.Contains(t, string(metro), "require('uniwind/metro')")
	assert.Contains(t, string(metro), "withUniwind(")
	assert.Contains(t, string(metro), "input: './global.css'")
	assert.NotContains(t, string(metro), "NativeWind")

	css, err := os.ReadFile(filepath.Join(root, "global.css"))
	require.NoError(t, err)
	assert.Equal(t, canonicalHeader+".btn{color:red}", string(css))

	_, err = os.Stat(filepath.Join(root, "nativewind-env.d.ts"))
	assert.True(t, os.IsNotExist(err), "legacy ambient types must be deleted")

	// The theming config is report-only.
	tailwind, err := os.ReadFile(filepath.Join(root, "tailwind.config.js"))
	require.NoError(t, err)
	assert.Equal(t, fixtureTailwind, string(tailwind))

	// Hash consistency for every applied change.
	for _, c := range report.Changes {
		if c.Action != ActionUpdate {
			continue
		}
		data, readErr := os.ReadFile(filepath.Join(root, filepath.FromSlash(c.File)))
		require.NoError(t, readErr)
		assert.Equal(t, Fingerprint(string(data)), c.AfterHash, c.File)
	}
}

func TestEngineRun_ApplyIsIdempotent(t *testing.T) {
	root := legacyProject(t)
	engine := New(discard())

	_, err := engine.Run(Request{ProjectRoot: root, Apply: true})
	require.NoError(t, err)

	second, err := engine.Run(Request{ProjectRoot: root, Apply: true})
	require.NoError(t, err)
	assert.Empty(t, second.Changes, "second pass must be a no-op")
	assert.Zero(t, second.Summary.ChangeCount)
}

func TestEngineRun_MissingReplacementEmittedOnce(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "global.css", fixtureCSS)
	writeFile(t, tmp, "src/a.ts", "export {}")
	writeFile(t, tmp, "src/b.ts", "export {}")

	report, err := New(discard()).Run(Request{ProjectRoot: tmp})
	require.NoError(t, err)
	assert.Equal(t, 1, kindsOf(report.Findings)[KindAmbientTypesMissing])
}

func TestEngineRun_ReplacementPresentSuppressesFinding(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "global.css", canonicalHeader+".a{}")
	writeFile(t, tmp, "uniwind-env.d.ts", `/// <reference types="uniwind/types" />`)

	report, err := New(discard()).Run(Request{ProjectRoot: tmp})
	require.NoError(t, err)
	assert.Zero(t, kindsOf(report.Findings)[KindAmbientTypesMissing])
}

func TestEngineRun_VirtualModeReturnsPatch(t *testing.T) {
	report, err := New(discard()).Run(Request{
		ProjectRoot: "/does/not/exist", // ignored: files take precedence
		BasePath:    "snapshot",
		Files: []VirtualFile{
			{Path: "global.css", Content: fixtureCSS},
			{Path: "nativewind-env.d.ts", Content: fixtureAmbient},
			{Path: "src/App.tsx", Content: fixtureApp},
		},
	})
	require.NoError(t, err)

	assert.True(t, report.Virtual)
	assert.Equal(t, "snapshot", report.Summary.Root)

	require.Len(t, report.Patch.Updates, 1)
	assert.Equal(t, "global.css", report.Patch.Updates[0].Path)
	assert.Equal(t, canonicalHeader+".btn{color:red}", report.Patch.Updates[0].Content)

	require.Len(t, report.Patch.Deletes, 1)
	assert.Equal(t, "nativewind-env.d.ts", report.Patch.Deletes[0].Path)

	// Changes are synthesized even though nothing was applied.
	assert.Len(t, report.Changes, 2)
	assert.Empty(t, report.Planned)
}

func TestEngineRun_MaxFilesCapsBothModes(t *testing.T) {
	root := legacyProject(t)
	report, err := New(discard()).Run(Request{ProjectRoot: root, MaxFiles: 2})
	require.NoError(t, err)
	assert.LessOrEqual(t, report.Summary.FilesScanned, 2)

	virtual, err := New(discard()).Run(Request{
		MaxFiles: 2,
		Files: []VirtualFile{
			{Path: "a.ts"}, {Path: "b.ts"}, {Path: "c.ts"}, {Path: "d.ts"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, virtual.Summary.FilesScanned)
}

func TestEngineRun_ExcludedDirsNeverReported(t *testing.T) {
	root := legacyProject(t)
	report, err := New(discard()).Run(Request{ProjectRoot: root})
	require.NoError(t, err)

	for _, f := range report.Findings {
		assert.NotContains(t, f.File, "node_modules")
	}
	for _, c := range report.Planned {
		assert.NotContains(t, c.File, "node_modules")
	}
}

func TestEngineRun_GuideHashInSummary(t *testing.T) {
	report, err := New(discard()).Run(Request{Files: []VirtualFile{{Path: "a.ts"}}})
	require.NoError(t, err)
	assert.Equal(t, GuideHash(), report.Summary.GuideHash)
	assert.NotEmpty(t, report.Summary.GuideHash)
}
