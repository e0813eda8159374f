// Package webapi provides the HTTP surface of the bank web application:
// the entry page, the account listing, and a health check.
package webapi

import (
	"net/http"

	"github.com/amirasaad/itsobank/pkg/app"
	listingweb "github.com/amirasaad/itsobank/webapi/listing"
	"github.com/amirasaad/itsobank/webapi/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	fiberApp := fiber.New(fiber.Config{
		Views:                   engine,
		ErrorHandler:            errorHandler,
		ProxyHeader:             a.Config.Server.ProxyHeader,
		EnableTrustedProxyCheck: a.Config.Server.ProxyHeader != "",
		TrustedProxies:          a.Config.Server.TrustedProxies,
	})

	fiberApp.Use(recover.New())
	if a.Config.Env != "test" {
		fiberApp.Use(logger.New())
	}

	// c.IP() only honours ProxyHeader for requests from TrustedProxies
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(
				c,
				fiber.StatusTooManyRequests,
				"Too Many Requests",
				"Rate limit exceeded",
			)
		},
	}))

	store := session.New(session.Config{
		Expiration:     a.Config.Session.Expiration,
		Storage:        a.Deps.SessionStorage,
		KeyLookup:      "cookie:" + a.Config.Session.CookieName,
		CookieSecure:   a.Config.Session.Secure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	index := func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{})
	}
	fiberApp.Get("/", index)
	fiberApp.Get("/index.html", index)

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	listingweb.Routes(fiberApp, a.ListingHandler, store, a.Deps.Logger)
	return fiberApp
}
