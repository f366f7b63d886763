package config

import (
	"os"
	"strings"
)

// supportedLanguages maps locale prefixes to the UI languages chatbot ships.
var supportedLanguages = map[string]string{
	"en": "en",
	"pt": "pt",
}

// DetectLanguage reads the system locale from LC_ALL, LANG or LANGUAGE (first
// non-empty wins) and returns a supported language code, falling back to "en".
func DetectLanguage() string {
	for _, env := range []string{"LC_ALL", "LANG", "LANGUAGE"} {
		if v := os.Getenv(env); v != "" {
			return parseLocale(v)
		}
	}
	return "en"
}

// parseLocale extracts the language prefix from "pt_BR.UTF-8", "pt-BR" or "pt".
func parseLocale(locale string) string {
	if idx := strings.IndexAny(locale, "._-@"); idx != -1 {
		locale = locale[:idx]
	}
	locale = strings.ToLower(strings.TrimSpace(locale))
	if code, ok := supportedLanguages[locale]; ok {
		return code
	}
	return "en"
}

// Language returns the configured UI language, detecting it when unset.
func Language(cfg *Config) string {
	if cfg.General.Language != "" {
		return cfg.General.Language
	}
	return DetectLanguage()
}
