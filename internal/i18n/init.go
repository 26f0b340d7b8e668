package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

type Service interface {
	T(lang string, key string, params map[string]any) string
}

type I18nService struct {
	bundle *i18n.Bundle
}

func NewInitI18nService() *I18nService {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	if err := loadLocales(bundle, locales, "locales/en.json", "locales/de.json"); err != nil {
		panic(err)
	}

	return &I18nService{bundle: bundle}
}

// loadLocales lädt die Nachrichtendateien aus fsys; die Sprache ergibt sich aus dem Dateinamen.
func loadLocales(bundle *i18n.Bundle, fsys fs.FS, paths ...string) error {
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return fmt.Errorf("load locale %s: %w", path, err)
		}
	}
	return nil
}

// T liefert die Übersetzung von key; unbekannte Schlüssel werden unverändert zurückgegeben.
func (g *I18nService) T(lang string, key string, params map[string]any) string {
	localizer := i18n.NewLocalizer(g.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})

	if err != nil {
		return key
	}

	return msg
}
