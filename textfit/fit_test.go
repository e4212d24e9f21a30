package textfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitExactWidth(t *testing.T) {
	assert.Equal(t, "hello", Fit("hello", 5))
}

func TestFitShorterPadsRight(t *testing.T) {
	assert.Equal(t, "hi   ", Fit("hi", 5))
}

func TestFitLongerTruncatesLeft(t *testing.T) {
	assert.Equal(t, "cdef", Fit("abcdef", 4))
}

func TestFitEmptyString(t *testing.T) {
	assert.Equal(t, "     ", Fit("", 5))
}

func TestFitMultibyteTruncatesLeft(t *testing.T) {
	// 4 runes but 5 bytes; must not split mid-character
	assert.Equal(t, "ber", Fit("über", 3))
}

func TestFitMultibytePadsRight(t *testing.T) {
	assert.Equal(t, "ü  ", Fit("ü", 3))
}

func TestFitPathExactWidth(t *testing.T) {
	assert.Equal(t, "src/main.go", FitPath("src/main.go", 11))
}

func TestFitPathShorterPadsRight(t *testing.T) {
	assert.Equal(t, "lib.go    ", FitPath("lib.go", 10))
}

func TestFitPathLongerMiddleTruncates(t *testing.T) {
	// width=15: available=12, end=6, start=6
	result := FitPath("src/game/entitlements.go", 15)
	assert.Len(t, result, 15)
	assert.Contains(t, result, "...")
}

func TestFitPathPreservesExtension(t *testing.T) {
	// The end (filename) should survive truncation
	result := FitPath("some/very/deep/nested/path/file.go", 20)
	assert.True(t, len(result) == 20)
	assert.Contains(t, result, ".go")
}

func TestFitPathEndGetsLargerShare(t *testing.T) {
	// width=10: available=7, end=4, start=3
	assert.Equal(t, "abc...wxyz", FitPath("abcdefghijklmnopqrstuvwxyz", 10))
}

func TestFitPathEmptyString(t *testing.T) {
	assert.Equal(t, "          ", FitPath("", 10))
}

func TestFitPathMultibyteMiddleTruncates(t *testing.T) {
	// 17 runes, width=15; must not panic or split mid-character
	result := FitPath("src/müll/datei.go", 15)
	assert.Len(t, []rune(result), 15)
	assert.Contains(t, result, "...")
}

func TestFitPathTinyWidthKeepsTail(t *testing.T) {
	assert.Equal(t, "go", FitPath("src/main.go", 2))
}
