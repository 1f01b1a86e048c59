package routes

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"flapjack/app/repositories"
	"flapjack/app/sessions"

	"github.com/stretchr/testify/require"
)

// testApp runs the full stack against a throwaway database and session
// store. Both clients share one cookie jar; direct does not follow
// redirects so tests can assert on them.
type testApp struct {
	t      *testing.T
	server *httptest.Server
	db     *sql.DB
	client *http.Client
	direct *http.Client
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dir := t.TempDir()
	db, err := repositories.Open(filepath.Join(dir, "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repositories.Init(db))

	store, err := sessions.NewStore(filepath.Join(dir, "sessions"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	codec := sessions.NewCookieCodec("test-secret", false)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// templates and static files resolve relative to the repo root
	server := httptest.NewServer(Setup(db, store, codec, logger, "../.."))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testApp{
		t:      t,
		server: server,
		db:     db,
		client: &http.Client{Jar: jar},
		direct: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (a *testApp) get(path string) (*http.Response, string) {
	a.t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	require.NoError(a.t, err)
	return resp, readBody(a.t, resp)
}

func (a *testApp) postForm(path string, values url.Values) (*http.Response, string) {
	a.t.Helper()
	resp, err := a.client.PostForm(a.server.URL+path, values)
	require.NoError(a.t, err)
	return resp, readBody(a.t, resp)
}

// postFormNoFollow submits a form and returns the raw redirect response.
func (a *testApp) postFormNoFollow(path string, values url.Values) *http.Response {
	a.t.Helper()
	resp, err := a.direct.PostForm(a.server.URL+path, values)
	require.NoError(a.t, err)
	resp.Body.Close()
	return resp
}

func (a *testApp) getNoFollow(path string) *http.Response {
	a.t.Helper()
	resp, err := a.direct.Get(a.server.URL + path)
	require.NoError(a.t, err)
	resp.Body.Close()
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func (a *testApp) register(username, email, password string) {
	a.t.Helper()
	resp, _ := a.postForm("/register", url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
	})
	require.Equal(a.t, http.StatusOK, resp.StatusCode)
}

func (a *testApp) login(email, password string) {
	a.t.Helper()
	resp, _ := a.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(a.t, http.StatusOK, resp.StatusCode)
}

func (a *testApp) logout() {
	a.t.Helper()
	resp, _ := a.get("/logout")
	require.Equal(a.t, http.StatusOK, resp.StatusCode)
}

// createPost submits the new-post form. The caller must be the admin.
func (a *testApp) createPost(title, subtitle, body string) {
	a.t.Helper()
	resp := a.postFormNoFollow("/new-post", url.Values{
		"title":    {title},
		"subtitle": {subtitle},
		"img_url":  {"https://example.com/cover.png"},
		"body":     {body},
	})
	require.Equal(a.t, http.StatusSeeOther, resp.StatusCode)
}

func (a *testApp) count(table string) int {
	a.t.Helper()
	var n int
	require.NoError(a.t, a.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
