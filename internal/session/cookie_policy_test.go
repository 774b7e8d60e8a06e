package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func testPolicy() CookiePolicy {
	return CookiePolicy{
		Name:   "session",
		MaxAge: 7 * 24 * time.Hour,
		Secure: false,
	}
}

func responseCookie(t *testing.T, ctx *fasthttp.RequestCtx, name string) *fasthttp.Cookie {
	t.Helper()
	cookie := fasthttp.AcquireCookie()
	t.Cleanup(func() { fasthttp.ReleaseCookie(cookie) })

	cookie.SetKey(name)
	require.True(t, ctx.Response.Header.Cookie(cookie), "cookie %q not set", name)
	return cookie
}

func TestCookiePolicyWrite(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	testPolicy().Write(ctx, "signed-token")

	cookie := responseCookie(t, ctx, "session")
	assert.Equal(t, "signed-token", string(cookie.Value()))
	assert.Equal(t, "/", string(cookie.Path()))
	assert.True(t, cookie.HTTPOnly())
	assert.False(t, cookie.Secure())
	assert.Equal(t, fasthttp.CookieSameSiteLaxMode, cookie.SameSite())
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge())
}

func TestCookiePolicySecureOnProduction(t *testing.T) {
	policy := testPolicy()
	policy.Secure = true

	ctx := &fasthttp.RequestCtx{}
	policy.Write(ctx, "signed-token")

	assert.True(t, responseCookie(t, ctx, "session").Secure())
}

func TestCookiePolicyClear(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	testPolicy().Clear(ctx)

	cookie := responseCookie(t, ctx, "session")
	assert.Empty(t, string(cookie.Value()))
	assert.True(t, cookie.HTTPOnly())
	assert.True(t, cookie.Expire().Before(time.Now()), "cleared cookie must expire in the past")
}

func TestCookiePolicyRead(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	assert.Empty(t, testPolicy().Read(ctx))

	ctx.Request.Header.SetCookie("session", "signed-token")
	assert.Equal(t, "signed-token", testPolicy().Read(ctx))
}
