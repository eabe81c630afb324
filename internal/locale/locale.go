// Package locale loads the embedded message catalogues and renders the
// user-facing strings of the CLI in the requested language.
package locale

import (
	"embed"
	"errors"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/selector"
)

//go:embed locales/*.toml
var localeFiles embed.FS

// Message IDs.
const (
	SelectorHeader     = "selector_header"
	SelectorPrompt     = "selector_prompt"
	SelectorInvalid    = "selector_invalid"
	SelectorNoSaves    = "selector_no_saves"
	ErrorConfiguration = "error_configuration"
	ErrorNotFound      = "error_not_found"
	ErrorInputClosed   = "error_input_closed"
	ResultSelected     = "result_selected"
	ConvertStart       = "convert_start"
	ConvertDone        = "convert_done"
	ConvertFailed      = "convert_failed"
)

// Catalog renders messages for one language, falling back to English for
// unknown languages and missing translations.
type Catalog struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads every embedded catalogue and selects lang. A malformed or
// unsupported tag selects English.
func New(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		p := path.Join("locales", e.Name())
		buf, err := localeFiles.ReadFile(p)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(buf, p); err != nil {
			return nil, err
		}
	}

	tag := language.English
	if parsed, err := language.Parse(lang); err == nil {
		matcher := language.NewMatcher(bundle.LanguageTags())
		if _, idx, conf := matcher.Match(parsed); conf != language.No {
			tag = bundle.LanguageTags()[idx]
		}
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// Tag returns the language actually in use.
func (c *Catalog) Tag() language.Tag { return c.tag }

// T renders message id with data. An unknown id renders as the id itself.
func (c *Catalog) T(id string, data map[string]string) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: id},
		TemplateData:   data,
	})
	if err != nil {
		return id
	}
	return s
}

// SelectorText returns the localized menu strings.
func (c *Catalog) SelectorText() selector.Text {
	return selector.Text{
		Header:  c.T(SelectorHeader, nil),
		Prompt:  c.T(SelectorPrompt, nil),
		Invalid: c.T(SelectorInvalid, nil),
		NoSaves: c.T(SelectorNoSaves, nil),
	}
}

// ErrorMessage renders a discovery error for the user, telling a missing
// environment (wrong platform) apart from missing save data. Other errors
// render as their own text.
func (c *Catalog) ErrorMessage(err error) string {
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		return c.T(ErrorConfiguration, map[string]string{
			"Platform": cfgErr.Platform.Label(),
			"Variable": cfgErr.Variable,
		})
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return c.T(ErrorNotFound, map[string]string{"Platform": nf.Platform.Label()})
	}
	if errors.Is(err, domain.ErrInputClosed) {
		return c.T(ErrorInputClosed, nil)
	}
	return err.Error()
}
