package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "Hinal Tilavat", c.Name)
	assert.Equal(t, 2026, c.Year)
	assert.Len(t, c.Projects, 4)
	assert.Equal(t, "Coming Soon!", c.BlogHeadline)
	assert.Len(t, c.FooterLinks, 2)

	about := string(c.About)
	assert.Equal(t, 3, strings.Count(about, "<p>"))
	assert.Contains(t, about, "<strong>Hinal Tilavat</strong>")
}

func TestProjectLinks(t *testing.T) {
	byTitle := map[string]Project{}
	for _, p := range Projects() {
		byTitle[p.Title] = p
	}

	for _, title := range []string{"Referaly", "Chipper", "FreJun"} {
		links := byTitle[title].Links
		require.Len(t, links, 2, title)
		assert.Equal(t, Android, links[0].Store)
		assert.Equal(t, IOS, links[1].Store)
	}
	require.Len(t, byTitle["Timealign"].Links, 1)
	assert.Equal(t, IOS, byTitle["Timealign"].Links[0].Store)
}

func TestProjectsReturnsCopy(t *testing.T) {
	ps := Projects()
	ps[0].Links[0].URL = "https://example.com"

	assert.NotEqual(t, "https://example.com", Projects()[0].Links[0].URL)
}

func TestParseStore(t *testing.T) {
	s, err := ParseStore("ios")
	require.NoError(t, err)
	assert.Equal(t, IOS, s)

	_, err = ParseStore("windows")
	assert.ErrorIs(t, err, ErrUnknownStore)
}

func TestStoreGlyphs(t *testing.T) {
	android := string(Android.Icon())
	ios := string(IOS.Icon())

	assert.Contains(t, android, `data-store="android"`)
	assert.Contains(t, ios, `data-store="ios"`)
	assert.NotEqual(t, android, ios)
	assert.Empty(t, Store("windows").Icon())

	assert.Equal(t, "Play Store", Android.Label())
	assert.Equal(t, "App Store", IOS.Label())
}
