package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/vitorlacerda05/Formula1-dashboard/api/transport"
	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/middleware"
	sessionInfra "github.com/vitorlacerda05/Formula1-dashboard/internal/session"
	"github.com/vitorlacerda05/Formula1-dashboard/pkg/httpcontext"
	authUC "github.com/vitorlacerda05/Formula1-dashboard/usecase/auth"
)

type fakeUsers struct {
	users      map[string]*domain.User
	activeByID map[int64]bool
}

func (f *fakeUsers) FindActiveByLogin(_ context.Context, login string) (*domain.User, error) {
	user, ok := f.users[login]
	if !ok || !user.Active {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) VerifyPassword(_ context.Context, plaintext, storedHash string) (bool, error) {
	return plaintext == storedHash, nil
}

func (f *fakeUsers) TouchLastLogin(context.Context, int64) error { return nil }

func (f *fakeUsers) IsActive(_ context.Context, userID int64) (bool, error) {
	return f.activeByID[userID], nil
}

type fakeAudit struct {
	entries []domain.AuditEntry
}

func (f *fakeAudit) Record(_ context.Context, entry domain.AuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type authFixture struct {
	handler *AuthHandler
	uc      *authUC.UseCase
	users   *fakeUsers
	audit   *fakeAudit
	cookies sessionInfra.CookiePolicy
	adapter *httpcontext.Adapter
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := &fakeUsers{
		users: map[string]*domain.User{
			"admin@f1.com": {
				ID:         1,
				Login:      "admin@f1.com",
				Password:   "scram-hash",
				Role:       domain.RoleAdministrator,
				OriginalID: 0,
				Active:     true,
			},
		},
		activeByID: map[int64]bool{1: true},
	}
	audit := &fakeAudit{}
	store := sessionInfra.NewCookieStore("test-secret", time.Hour, "f1-dashboard")
	uc := authUC.New(users, store, audit, nil)
	adapter := httpcontext.NewAdapter(time.Second)
	cookies := sessionInfra.CookiePolicy{Name: "session", MaxAge: time.Hour}

	return &authFixture{
		handler: NewAuthHandler(uc, cookies, adapter, nil),
		uc:      uc,
		users:   users,
		audit:   audit,
		cookies: cookies,
		adapter: adapter,
	}
}

func (f *authFixture) login(t *testing.T, login, password string) *fasthttp.RequestCtx {
	t.Helper()
	body, err := json.Marshal(transport.LoginRequest{Login: login, Password: password})
	require.NoError(t, err)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(http.MethodPost)
	ctx.Request.SetBody(body)
	f.handler.Login(ctx)
	return ctx
}

func sessionCookieValue(t *testing.T, ctx *fasthttp.RequestCtx) string {
	t.Helper()
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)
	cookie.SetKey("session")
	if !ctx.Response.Header.Cookie(cookie) {
		return ""
	}
	return string(cookie.Value())
}

func TestLoginHandlerSuccess(t *testing.T) {
	f := newAuthFixture(t)

	ctx := f.login(t, "admin@f1.com", "scram-hash")
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp transport.LoginResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Session)
	assert.True(t, resp.Session.IsAuthenticated())
	assert.Equal(t, domain.RoleAdministrator, resp.Session.Role)

	assert.NotEmpty(t, sessionCookieValue(t, ctx), "login must set the session cookie")
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, domain.AuditLogin, f.audit.entries[0].Action)
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	ctx := f.login(t, "admin@f1.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())

	var resp transport.LoginResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, domain.ErrInvalidCredentials.Message, resp.Message)
	assert.Nil(t, resp.Session)

	assert.Empty(t, sessionCookieValue(t, ctx), "failed login must not set a cookie")
	assert.Empty(t, f.audit.entries)
}

func TestLoginHandlerMalformedBody(t *testing.T) {
	f := newAuthFixture(t)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(http.MethodPost)
	ctx.Request.SetBody([]byte("{not json"))
	f.handler.Login(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSessionHandlerWithoutCookie(t *testing.T) {
	f := newAuthFixture(t)

	ctx := &fasthttp.RequestCtx{}
	f.handler.Session(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp transport.SessionResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.False(t, resp.IsAuthenticated)
	assert.Nil(t, resp.Session)
}

func TestSessionHandlerWithValidCookie(t *testing.T) {
	f := newAuthFixture(t)
	token := sessionCookieValue(t, f.login(t, "admin@f1.com", "scram-hash"))

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetCookie("session", token)
	f.handler.Session(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp transport.SessionResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.True(t, resp.IsAuthenticated)
	require.NotNil(t, resp.Session)
	assert.Equal(t, int64(1), resp.Session.UserID)
}

func TestSessionHandlerClearsCorruptedCookie(t *testing.T) {
	f := newAuthFixture(t)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetCookie("session", "not-a-jwt")
	f.handler.Session(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp transport.SessionResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.False(t, resp.IsAuthenticated)

	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)
	cookie.SetKey("session")
	require.True(t, ctx.Response.Header.Cookie(cookie), "corrupted cookie must be cleared")
	assert.Empty(t, string(cookie.Value()))
}

func TestSessionHandlerAfterDeactivation(t *testing.T) {
	f := newAuthFixture(t)
	token := sessionCookieValue(t, f.login(t, "admin@f1.com", "scram-hash"))

	f.users.activeByID[1] = false

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetCookie("session", token)
	f.handler.Session(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp transport.SessionResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.False(t, resp.IsAuthenticated, "token outlives the account, validation must not")
}

func TestLogoutFlow(t *testing.T) {
	f := newAuthFixture(t)
	token := sessionCookieValue(t, f.login(t, "admin@f1.com", "scram-hash"))
	f.audit.entries = nil

	sessionAuth := middleware.SessionAuth(f.uc, f.cookies, f.adapter, nil)
	logout := sessionAuth(f.handler.Logout)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(http.MethodPost)
	ctx.Request.Header.SetCookie("session", token)
	logout(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, domain.AuditLogout, f.audit.entries[0].Action)

	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)
	cookie.SetKey("session")
	require.True(t, ctx.Response.Header.Cookie(cookie))
	assert.Empty(t, string(cookie.Value()), "logout must clear the session cookie")
}

func TestLogoutWithoutSession(t *testing.T) {
	f := newAuthFixture(t)

	sessionAuth := middleware.SessionAuth(f.uc, f.cookies, f.adapter, nil)
	logout := sessionAuth(f.handler.Logout)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(http.MethodPost)
	logout(ctx)

	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
	assert.Empty(t, f.audit.entries)
}
