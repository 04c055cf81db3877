package uploadbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar_ClampsPercent(t *testing.T) {
	bar := NewBar(nil)

	bar.SetPercent(-10)
	assert.Equal(t, 0, bar.Percent())

	bar.SetPercent(150)
	assert.Equal(t, 100, bar.Percent())

	bar.SetPercent(42)
	assert.Equal(t, 42, bar.Percent())
}

func TestBar_ViewIncludesPercentLabel(t *testing.T) {
	bar := NewBar(nil)
	bar.SetPercent(73)
	assert.Contains(t, bar.View(), "73%")
}

func TestBar_Reset(t *testing.T) {
	bar := NewBar(nil)
	bar.SetPercent(80)
	bar.Reset()
	assert.Equal(t, 0, bar.Percent())
}

func TestBar_SetWidthFloor(t *testing.T) {
	bar := NewBar(nil)
	bar.SetWidth(4)
	assert.Equal(t, 4, bar.Width())
	// Rendering at tiny widths must not panic.
	assert.NotEmpty(t, bar.View())
}
