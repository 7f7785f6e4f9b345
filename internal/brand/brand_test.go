package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want DisplayMode
		ok   bool
	}{
		{"", ModeLight, true},
		{"dark", ModeDark, true},
		{" MONO ", ModeMono, true},
		{"reversed", ModeReversed, true},
		{"neon", ModeLight, false},
	}

	for _, tc := range cases {
		got, ok := ParseMode(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func TestParseBrand(t *testing.T) {
	t.Parallel()

	b, ok := ParseBrand(" Umoja")
	assert.True(t, ok)
	assert.Equal(t, Umoja, b)

	_, ok = ParseBrand("acme")
	assert.False(t, ok)

	assert.Len(t, Brands(), 5)
	assert.Equal(t, TafariTech, Brands()[0])
}

func TestParseLockup(t *testing.T) {
	t.Parallel()

	l, ok := ParseLockup("")
	assert.True(t, ok)
	assert.Equal(t, LockupWordmark, l)

	l, ok = ParseLockup("Stacked")
	assert.True(t, ok)
	assert.Equal(t, LockupStacked, l)

	_, ok = ParseLockup("poster")
	assert.False(t, ok)

	assert.False(t, LockupMark.HasText())
	assert.False(t, LockupWordmark.HasGlyph())
	assert.True(t, LockupHorizontal.HasGlyph() && LockupHorizontal.HasText())
}

func TestCasingApply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SANKOFA", CasingUpper.Apply("Sankofa"))
	assert.Equal(t, "Tafari Technologies", CasingTitle.Apply("Tafari Technologies"))
}

func TestModeBackground(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#FFFFFF", ModeLight.Background())
	assert.Equal(t, "#0F172A", ModeReversed.Background())
	assert.Equal(t, "#FFFFFF", DisplayMode("neon").Background())
}
