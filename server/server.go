package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	middlewareCompress "github.com/gofiber/fiber/v2/middleware/compress"
	middlewareLogger "github.com/gofiber/fiber/v2/middleware/logger"
	middlewareRecover "github.com/gofiber/fiber/v2/middleware/recover"
	middlewareSession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/maxsid/memberful-login/memberful"
	"github.com/maxsid/memberful-login/memberful/auth"
)

var (
	sessionConfig = middlewareSession.Config{
		Expiration:     time.Hour,
		CookieName:     "session_id",
		KeyGenerator:   utils.UUIDv4,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}

	oauthClient   AuthClient
	sessionStore  sessionsGetter
	memberService memberful.Service
)

// Run runs a web server.
func Run(addr string, client AuthClient, serv memberful.Service) {
	if client == nil || serv == nil {
		panic("Got nil AuthClient or member Service!")
	}
	oauthClient, memberService = client, serv
	app := createApp()
	if err := app.Listen(addr); err != nil {
		panic(err)
	}
}

func createApp() *fiber.App {
	sessionStore = &sessionGettingStore{store: middlewareSession.New(sessionConfig)}

	engine, err := templatesEngine()
	if err != nil {
		panic(err)
	}

	app := fiber.New(fiber.Config{Views: engine})

	initMiddlewares(app)
	initHandlers(app)

	return app
}

func initMiddlewares(app *fiber.App) {
	app.Use(middlewareLogger.New())
	app.Use(middlewareRecover.New())
	app.Use(middlewareCompress.New())
}

func initHandlers(app *fiber.App) {
	app.Get("/", index)
	app.Get("/auth", authCallback)
	app.Get("/destroy", destroySession)
	app.Get("/static/*", static) // handles static
}

// index handles and renders "/" path.
func index(c *fiber.Ctx) error {
	sess := mustSession(c, sessionStore)
	tok, err := getSessionToken(sess)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return indexRequireAuthentication(c, sess, oauthClient)
		}
		return err
	}
	return indexAuthenticated(c, sess, tok)
}

// authCallback handles GET "/auth" path which receives the provider's
// callback with the state and one-time authorization code.
func authCallback(c *fiber.Ctx) error {
	sess := mustSession(c, sessionStore)
	data := getOAuthStateAndCode(c)
	if ok := compareAuthStates(sess, data.State); !ok {
		// a state that survived a forged callback must never be presented again
		_ = setAuthState(sess, "")
		return fmt.Errorf("%w: callback state differs from the issued one", auth.ErrStateMismatch)
	}
	if data.Code == "" {
		return fmt.Errorf("%w of code: it's empty", ErrInvalidValue)
	}
	tok, err := oauthClient.Exchange(context.TODO(), data.Code)
	if err != nil {
		return err
	}
	_ = setAuthState(sess, "", false) // save won't happen, so error won't happen
	if err = setSessionToken(sess, tok); err != nil {
		return err
	}

	return c.Redirect("/")
}

// destroySession handles "/destroy" path. Destroys user's session.
func destroySession(c *fiber.Ctx) error {
	sess := mustSession(c, sessionStore)
	if err := sess.Destroy(); err != nil {
		panic(err)
	}
	return c.Redirect("/")
}

// indexRequireAuthentication renders the index page if a user is not authenticated.
// Issues a fresh state value for the new authorization request.
func indexRequireAuthentication(c *fiber.Ctx, sess sessionRecordSetterDeleterSaverDestroyer, urlGenerator authCodeURLGenerator) error {
	if err := sess.Destroy(); err != nil {
		return err
	}
	state := auth.GenerateState()
	if err := setAuthState(sess, state); err != nil {
		return err
	}
	link := generateAuthLink(urlGenerator, state)
	return renderRequireAuth(c, link)
}

// indexAuthenticated renders the member profile. An expired or revoked
// access token triggers exactly one refresh-and-retry; a failed refresh is
// terminal and restarts the authorization flow.
func indexAuthenticated(c *fiber.Ctx, sess sessionManager, tok *auth.Token) error {
	member, err := memberService.CurrentMember(context.TODO(), tok)
	if errors.Is(err, memberful.ErrUnauthorized) {
		member, err = refreshAndRetry(sess, tok)
		if errors.Is(err, auth.ErrRefresh) {
			return indexRequireAuthentication(c, sess, oauthClient)
		}
	}
	if err != nil {
		return err
	}
	return renderProfile(c, member)
}

// refreshAndRetry refreshes the session's token pair and retries the
// profile fetch once. Whatever refresh token the provider answered with is
// persisted before the retry.
func refreshAndRetry(sess sessionRecordSetterSaver, tok *auth.Token) (*memberful.Member, error) {
	refreshed, err := oauthClient.Refresh(context.TODO(), tok.RefreshToken)
	if err != nil {
		return nil, err
	}
	if err = setSessionToken(sess, refreshed); err != nil {
		return nil, err
	}
	return memberService.CurrentMember(context.TODO(), refreshed)
}
