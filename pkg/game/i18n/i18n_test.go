package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

var messageKeys = []string{
	"SCORE_BANNER",
	"PROMPT_TITLE",
	"PROMPT",
	"INSTRUCTIONS",
	"ALREADY_GUESSED",
	"NOT_VALID",
	"VICTORY",
	"GAME_OVER",
	"CLICK_TO_EXIT",
	"PRESS_ENTER_TO_EXIT",
}

func TestT(t *testing.T) {
	require.NoError(t, Load(DefaultLocale))

	assert.Equal(t, "Score: 3/29 Districts", T("SCORE_BANNER", 3, 29))
	assert.Equal(t, "0/29 Districts Correct", T("PROMPT_TITLE", 0, 29))
	assert.Equal(t, "Already Guessed!", T("ALREADY_GUESSED"))
	assert.Equal(t, "Not a valid district!", T("NOT_VALID"))
	assert.Equal(t, "Game Over! You found 1/2 districts. Red ones were missed.", T("GAME_OVER", 1, 2))
}

func TestVictoryMessage(t *testing.T) {
	require.NoError(t, Load(DefaultLocale))
	assert.Equal(t, "Congratulations! You got all districts!", T("VICTORY"))
}

// The window draws every message with the Go fonts, which have no emoji.
func TestMessagesHaveGlyphsInGoFonts(t *testing.T) {
	require.NoError(t, Load(DefaultLocale))

	fonts := map[string][]byte{
		"regular": goregular.TTF,
		"bold":    gobold.TTF,
		"italic":  goitalic.TTF,
	}

	for name, ttf := range fonts {
		f, err := sfnt.Parse(ttf)
		require.NoError(t, err, name)

		var buf sfnt.Buffer
		for _, key := range messageKeys {
			msg := T(key)
			require.NotEqual(t, key, msg, "missing translation for %s", key)

			for _, r := range msg {
				idx, err := f.GlyphIndex(&buf, r)
				require.NoError(t, err)
				assert.NotZero(t, idx, "%s font has no glyph for %q in %s", name, r, key)
			}
		}
	}
}

func TestUnknownKeyFallsBack(t *testing.T) {
	assert.Equal(t, "NO_SUCH_KEY", T("NO_SUCH_KEY"))
}

func TestLoadUnknownLocale(t *testing.T) {
	err := Load("xx_XX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "en_GB")
	assert.Equal(t, DefaultLocale, Active())
}

func TestAvailable(t *testing.T) {
	assert.Contains(t, Available(), DefaultLocale)
}
