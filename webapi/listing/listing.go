// Package listing wires the account listing handler to Fiber: it reads the
// customerNumber parameter, loads and saves the web session, and renders the
// selected view.
package listing

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/itsobank/pkg/handler/listing"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Path is the route of the account listing.
const Path = "/ListAccounts"

// Routes registers GET and POST /ListAccounts. Both verbs behave the same.
func Routes(app *fiber.App, h *listing.Handler, store *session.Store, logger *slog.Logger) {
	handler := ListAccounts(h, store, logger)
	app.Get(Path, handler)
	app.Post(Path, handler)
}

// ListAccounts returns the Fiber handler for one account listing request.
// A session that cannot be loaded or saved ends in the error view like any
// other lookup failure.
func ListAccounts(h *listing.Handler, store *session.Store, logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			logger.Error("Failed to load session", "error", err)
			return render(c, failure(fmt.Errorf("session unavailable: %w", err)))
		}

		res := h.Handle(c.UserContext(), readRequest(c), snapshot(sess))

		if res.SessionDelta != nil {
			sess.Set(listing.ParamCustomerNumber, *res.SessionDelta)
		}
		if err := sess.Save(); err != nil {
			logger.Error("Failed to save session", "error", err)
			return render(c, failure(fmt.Errorf("session unavailable: %w", err)))
		}
		return render(c, res)
	}
}

// readRequest looks at the query string first, then the form body.
func readRequest(c *fiber.Ctx) listing.Request {
	name := listing.ParamCustomerNumber
	if args := c.Context().QueryArgs(); args.Has(name) {
		return listing.Request{CustomerNumber: string(args.Peek(name)), HasCustomerNumber: true}
	}
	if args := c.Context().PostArgs(); args.Has(name) {
		return listing.Request{CustomerNumber: string(args.Peek(name)), HasCustomerNumber: true}
	}
	if form, err := c.MultipartForm(); err == nil {
		if vals, ok := form.Value[name]; ok && len(vals) > 0 {
			return listing.Request{CustomerNumber: vals[0], HasCustomerNumber: true}
		}
	}
	return listing.Request{}
}

func snapshot(sess *session.Session) listing.Snapshot {
	if v, ok := sess.Get(listing.ParamCustomerNumber).(string); ok {
		return listing.Snapshot{CustomerNumber: v, Present: true}
	}
	return listing.Snapshot{}
}

func failure(err error) listing.Result {
	return listing.Result{
		View: listing.ViewError,
		Context: map[string]any{
			listing.KeyMessage: err.Error(),
			listing.KeyForward: listing.EntryPage,
		},
	}
}

func render(c *fiber.Ctx, res listing.Result) error {
	return c.Render(res.View, fiber.Map(res.Context))
}
