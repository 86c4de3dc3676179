package countrydata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "US", NormalizeCode("USA"))
	assert.Equal(t, "GB", NormalizeCode("GBR"))
	assert.Equal(t, "KR", NormalizeCode("KOR"))

	// Unknown codes pass through unchanged.
	assert.Equal(t, "FIN", NormalizeCode("FIN"))
	assert.Equal(t, "", NormalizeCode(""))
}

func TestNormalizeCode_Idempotent(t *testing.T) {
	once := NormalizeCode("USA")
	assert.Equal(t, once, NormalizeCode(once))
}

func TestCorrectName(t *testing.T) {
	assert.Equal(t, "United States", CorrectName("United States of America"))
	assert.Equal(t, "Russia", CorrectName("Russian Federation"))
	assert.Equal(t, "South Korea", CorrectName("Korea, Rep."))
	assert.Equal(t, "Czechia", CorrectName("Czech Republic"))

	// Unknown names pass through unchanged.
	assert.Equal(t, "France", CorrectName("France"))
	assert.Equal(t, "", CorrectName(""))
}

func TestCorrectName_Idempotent(t *testing.T) {
	once := CorrectName("Russian Federation")
	assert.Equal(t, once, CorrectName(once))
}

func TestFind_ByNormalizedCode(t *testing.T) {
	d := New()

	match := d.Find("USA", "United States of America")
	require.True(t, match.Matched())
	assert.Equal(t, "US", match.Record.Alpha2)
	assert.Equal(t, "United States", match.Record.Name)
	assert.Equal(t, "🇺🇸", match.Record.Emoji)
}

// Ghana's alpha-3 code is not in the override table, so only the name
// predicate can surface it. This is the OR rule doing its job.
func TestFind_ByNameWhenCodeUnmapped(t *testing.T) {
	d := New()

	match := d.Find("GHA", "Ghana")
	require.True(t, match.Matched())
	assert.Equal(t, "GH", match.Record.Alpha2)
}

func TestFind_NoMatch(t *testing.T) {
	d := New()

	match := d.Find("XXX", "Atlantis")
	assert.False(t, match.Matched())
}

func TestByAlpha2(t *testing.T) {
	d := New()

	rec, ok := d.ByAlpha2("jp")
	require.True(t, ok)
	assert.Equal(t, "Japan", rec.Name)
	assert.Equal(t, "JPN", rec.Alpha3)

	_, ok = d.ByAlpha2("ZZ")
	assert.False(t, ok)
}

func TestFlagEmoji(t *testing.T) {
	assert.Equal(t, "🇺🇸", FlagEmoji("US"))
	assert.Equal(t, "🇬🇧", FlagEmoji("gb"))
	assert.Equal(t, "", FlagEmoji("USA"))
	assert.Equal(t, "", FlagEmoji("U1"))
	assert.Equal(t, "", FlagEmoji(""))
}

func TestDirectoryHasEmojiForEveryRecord(t *testing.T) {
	d := New()
	for _, rec := range d.records {
		assert.NotEmpty(t, rec.Emoji, "missing flag for %s", rec.Name)
	}
}
