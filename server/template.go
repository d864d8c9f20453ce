package server

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/maxsid/memberful-login/memberful"
)

const (
	templateRequireAuth = "require_auth"
	templateProfile     = "profile"
)

//go:embed template/*.html
var templateFS embed.FS

// templatesEngine returns html.Engine for pages rendering.
func templatesEngine() (*html.Engine, error) {
	sfs, err := fs.Sub(templateFS, "template")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(sfs), ".html")
	return engine.AddFunc("FormatExpiresAt", formatSubscriptionExpiresAt), nil
}

// renderRequireAuth renders page with the sign-in link.
func renderRequireAuth(c *fiber.Ctx, authLink string) error {
	return c.Render(templateRequireAuth, fiber.Map{
		"AuthLink": authLink,
	})
}

// renderProfile renders the member profile page.
func renderProfile(c *fiber.Ctx, member *memberful.Member) error {
	return c.Render(templateProfile, fiber.Map{
		"Member":        member,
		"Subscriptions": member.Subscriptions,
	})
}

// formatSubscriptionExpiresAt returns a readable expiration date of the
// subscription. Returns "never" for subscriptions without one.
func formatSubscriptionExpiresAt(expiresAt *time.Time) string {
	if expiresAt == nil {
		return "never"
	}
	return expiresAt.Format("2 January 2006")
}
