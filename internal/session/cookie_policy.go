package session

import (
	"time"

	"github.com/valyala/fasthttp"
)

// CookiePolicy centralizes the attributes of the session cookie. The
// canonical policy is HttpOnly, Path=/, SameSite=Lax, Max-Age of 7 days and
// Secure on production deployments.
type CookiePolicy struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Write attaches the session cookie to the response.
func (p CookiePolicy) Write(ctx *fasthttp.RequestCtx, token string) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(p.Name)
	cookie.SetValue(token)
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetSecure(p.Secure)
	cookie.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	cookie.SetMaxAge(int(p.MaxAge.Seconds()))

	ctx.Response.Header.SetCookie(cookie)
}

// Clear instructs the client to drop the session cookie.
func (p CookiePolicy) Clear(ctx *fasthttp.RequestCtx) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(p.Name)
	cookie.SetValue("")
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetSecure(p.Secure)
	cookie.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	cookie.SetMaxAge(-1)
	cookie.SetExpire(fasthttp.CookieExpireDelete)

	ctx.Response.Header.SetCookie(cookie)
}

// Read extracts the raw session token from the request, empty when absent.
func (p CookiePolicy) Read(ctx *fasthttp.RequestCtx) string {
	return string(ctx.Request.Header.Cookie(p.Name))
}
