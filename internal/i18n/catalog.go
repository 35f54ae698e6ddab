package i18n

import (
	"embed"
	"log/slog"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messagesFS embed.FS

var messageFiles = []string{
	"messages/active.fr.toml",
	"messages/active.en.toml",
}

// Translator serves UI strings from the embedded message catalog, keyed by
// message id and parameterized by locale.
type Translator struct {
	localizers map[Locale]*goi18n.Localizer
	logger     *slog.Logger
}

// NewTranslator loads the embedded catalog into a go-i18n bundle.
func NewTranslator(logger *slog.Logger) (*Translator, error) {
	bundle := goi18n.NewBundle(language.French)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, name := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(messagesFS, name); err != nil {
			return nil, err
		}
	}
	return &Translator{
		localizers: map[Locale]*goi18n.Localizer{
			LocaleFR: goi18n.NewLocalizer(bundle, string(LocaleFR)),
			LocaleEN: goi18n.NewLocalizer(bundle, string(LocaleEN)),
		},
		logger: logger,
	}, nil
}

// Lookup returns the catalog string for the message id in the given locale.
// Unknown ids fall back to the id itself so a missing translation renders as
// its key instead of breaking the payload.
func (t *Translator) Lookup(locale Locale, messageID string) string {
	localizer, ok := t.localizers[locale]
	if !ok {
		localizer = t.localizers[DefaultLocale]
	}
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		if t.logger != nil {
			t.logger.Warn("missing translation", "message_id", messageID, "locale", string(locale))
		}
		return messageID
	}
	return msg
}
