package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func babelFile(content string) SourceFile {
	return SourceFile{Path: "/proj/babel.config.js", Rel: "babel.config.js", Content: content}
}

func TestDetectBabelConfig_MiddleElement(t *testing.T) {
	res := detectBabelConfig(babelFile(
		`module.exports = { presets: ['a', 'nativewind/babel', 'b'] };`))

	assert.True(t, res.changed)
	assert.Equal(t, `module.exports = { presets: ['a', 'b'] };`, res.updated)
	require.Len(t, res.findings, 1)
	assert.Equal(t, KindBuildConfigArray, res.findings[0].Kind)
}

func TestDetectBabelConfig_OwnLine(t *testing.T) {
	in := "module.exports = {\n  presets: [\n    'babel-preset-expo',\n    'nativewind/babel',\n    'other',\n  ],\n};\n"
	want := "module.exports = {\n  presets: [\n    'babel-preset-expo',\n    'other',\n  ],\n};\n"

	res := detectBabelConfig(babelFile(in))
	assert.True(t, res.changed)
	assert.Equal(t, want, res.updated)
	assert.Contains(t, res.notes, "remove-preset-own-line")
}

func TestDetectBabelConfig_FirstElement(t *testing.T) {
	res := detectBabelConfig(babelFile(
		`module.exports = { presets: ["nativewind/babel", "babel-preset-expo"] };`))

	assert.True(t, res.changed)
	assert.Equal(t, `module.exports = { presets: ["babel-preset-expo"] };`, res.updated)
}

func TestDetectBabelConfig_DoubleQuotedTrailing(t *testing.T) {
	res := detectBabelConfig(babelFile(
		`module.exports = { presets: ["babel-preset-expo", "nativewind/babel"] };`))

	assert.True(t, res.changed)
	assert.Equal(t, `module.exports = { presets: ["babel-preset-expo"] };`, res.updated)
}

func TestDetectBabelConfig_Idempotent(t *testing.T) {
	first := detectBabelConfig(babelFile(
		`module.exports = { presets: ['a', 'nativewind/babel', 'b'] };`))
	require.True(t, first.changed)

	second := detectBabelConfig(babelFile(first.updated))
	assert.False(t, second.changed)
	assert.Equal(t, first.updated, second.updated)
	assert.Empty(t, second.findings)
}

func TestDetectBabelConfig_NoLegacyPreset(t *testing.T) {
	in := `module.exports = { presets: ['babel-preset-expo'] };`
	res := detectBabelConfig(babelFile(in))

	assert.False(t, res.changed)
	assert.Equal(t, in, res.updated)
	assert.Empty(t, res.findings)
}

func TestDetectBabelConfig_UnmatchedShapeStillReported(t *testing.T) {
	// Literal present but in a shape none of the removal patterns covers:
	// finding only, content untouched.
	in := `module.exports = { presets: ['nativewind/babel'] };`
	res := detectBabelConfig(babelFile(in))

	assert.False(t, res.changed)
	assert.Equal(t, in, res.updated)
	require.Len(t, res.findings, 1)
	assert.Contains(t, res.findings[0].Message, "review manually")
}
