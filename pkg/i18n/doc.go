// Package i18n translates message keys using YAML translation files.
//
// Translations are nested maps per language, addressed with dot-separated
// keys, and templates use named placeholders:
//
//	de:
//	  validation:
//	    min_length: "muss mindestens %{min} Zeichen lang sein"
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFileAdapter("locales.yaml"))
//	msg := tr.Td("de", "validation.min_length", "must be at least 3 characters long", "min", "3")
//
// The locale of a request travels in its context via SetLocale and GetLocale.
package i18n
