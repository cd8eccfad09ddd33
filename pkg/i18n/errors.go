package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n: adapter is nil")
	ErrEmptyLanguage        = errors.New("i18n: empty language code")
	ErrYAMLParsingCancelled = errors.New("i18n: yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("i18n: failed to parse YAML content")
	ErrNoTranslations       = errors.New("i18n: no translations found")
	ErrLoadingFileCancelled = errors.New("i18n: loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("i18n: failed to read translation file")
)
