package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// LocaleRU is the default storefront locale.
	LocaleRU = "ru-RU"
	// LocaleEN is the fallback English locale.
	LocaleEN = "en-US"
)

// ResolveLocale picks the response locale from the request: the lang query
// parameter wins, then Accept-Language, then the default.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return LocaleRU
	}
	if lang := normalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if lang := normalizeLocale(tag); lang != "" {
			return lang
		}
	}
	return LocaleRU
}

func normalizeLocale(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case tag == "":
		return ""
	case strings.HasPrefix(tag, "ru"):
		return LocaleRU
	case strings.HasPrefix(tag, "en"):
		return LocaleEN
	default:
		return ""
	}
}

// T returns the message for key in the given locale. Unknown keys are
// returned as-is so missing translations stay visible.
func T(locale, key string) string {
	if messages, ok := catalog[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[LocaleRU][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats the message for key with args.
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
