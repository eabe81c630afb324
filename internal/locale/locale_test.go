package locale

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/selector"
)

func TestNew_LanguageSelection(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"en", language.English},
		{"fr", language.French},
		{"fr-CA", language.French},
		{"de", language.English},
		{"not a tag!", language.English},
		{"", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			c, err := New(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Tag())
		})
	}
}

func TestSelectorText_EnglishMatchesDefaults(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, selector.DefaultText, c.SelectorText())
}

func TestSelectorText_French(t *testing.T) {
	c, err := New("fr")
	require.NoError(t, err)
	text := c.SelectorText()
	assert.Equal(t, "Sélectionnez le dossier de sauvegarde à utiliser :", text.Prompt)
	assert.Equal(t, "Aucune sauvegarde trouvée", text.NoSaves)
}

func TestT_TemplateAndUnknownID(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "Selected save folder: /saves/A", c.T(ResultSelected, map[string]string{"Folder": "/saves/A"}))
	assert.Equal(t, "no_such_message", c.T("no_such_message", nil))
}

func TestErrorMessage(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)

	cfgErr := fmt.Errorf("locate: %w", &domain.ConfigurationError{Platform: domain.PlatformMicrosoft, Variable: "LOCALAPPDATA"})
	assert.Equal(t,
		"Microsoft/Xbox: environment variable LOCALAPPDATA is not set. Are you on the right platform?",
		c.ErrorMessage(cfgErr))

	nf := &domain.NotFoundError{Platform: domain.PlatformSteam, What: "save folder"}
	assert.Equal(t, "Steam: no matching save data was found.", c.ErrorMessage(nf))

	assert.Equal(t, "Input closed before a save folder was selected.", c.ErrorMessage(domain.ErrInputClosed))
	assert.Equal(t, "disk on fire", c.ErrorMessage(errors.New("disk on fire")))
}

func TestErrorMessage_FrenchDistinguishesKinds(t *testing.T) {
	c, err := New("fr")
	require.NoError(t, err)

	cfgMsg := c.ErrorMessage(&domain.ConfigurationError{Platform: domain.PlatformSteam, Variable: "LOCALAPPDATA"})
	nfMsg := c.ErrorMessage(&domain.NotFoundError{Platform: domain.PlatformSteam})
	assert.Contains(t, cfgMsg, "LOCALAPPDATA")
	assert.Contains(t, cfgMsg, "bonne plateforme")
	assert.Contains(t, nfMsg, "aucune donnée")
	assert.NotEqual(t, cfgMsg, nfMsg)
}
