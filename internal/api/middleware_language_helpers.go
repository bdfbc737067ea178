package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LanguageMiddleware resolves the request language from the lang query, the language
// cookie and Accept-Language, in that order.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	if cookieLanguage := c.Cookies(languageCookieName); cookieLanguage != "" {
		language = handler.i18n.NormalizeLanguage(cookieLanguage)
	}
	if queryLanguage := strings.TrimSpace(c.Query(languageQueryKey)); queryLanguage != "" {
		language = handler.i18n.NormalizeLanguage(queryLanguage)
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	return c.Next()
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(1, 0, 0),
	})
}
