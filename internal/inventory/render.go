package inventory

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Layout wraps every page.
const Layout = "layouts/main"

func render(c *fiber.Ctx, view string, data fiber.Map) error {
	return c.Render(view, data, Layout)
}

// notFound turns a missing record into the 404 page; other errors pass through.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.ErrNotFound
	}
	return err
}

func asValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func pathTo(prefix, name string) string {
	return prefix + "/" + url.PathEscape(name)
}
