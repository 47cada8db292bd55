package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-admin/internal/session"
	"portfolio-admin/internal/upload"
)

type recordedRequest struct {
	Method      string
	Path        string
	Query       string
	ContentType string
	Auth        string
	Cookie      string
	Body        []byte
}

// recorder answers every request with the handler for its "METHOD path"
// and keeps a copy of what it received
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]http.HandlerFunc
}

func newRecorder(t *testing.T) (*recorder, *httptest.Server) {
	t.Helper()
	rec := &recorder{routes: map[string]http.HandlerFunc{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.requests = append(rec.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Auth:        r.Header.Get("Authorization"),
			Cookie:      r.Header.Get("Cookie"),
			Body:        body,
		})
		h, ok := rec.routes[r.Method+" "+r.URL.Path]
		rec.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return rec, srv
}

func (r *recorder) on(route string, h http.HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[route] = h
}

func (r *recorder) last() recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[len(r.requests)-1]
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func newTestClient(t *testing.T, baseURL string, state session.State) (*Client, *session.Session) {
	t.Helper()
	sess, err := session.New(context.Background(), session.NewMemoryStore(state))
	require.NoError(t, err)
	c, err := NewClient(baseURL+"/api", sess)
	require.NoError(t, err)
	return c, sess
}

func TestDoSetsJSONContentTypeAndBearer(t *testing.T) {
	rec, srv := newRecorder(t)
	rec.on("GET /api/portfolio/projects", jsonHandler(http.StatusOK, `{"data":[]}`))

	c, _ := newTestClient(t, srv.URL, session.State{Token: "tok", IsAuthenticated: true})
	_, err := c.ListProjects(context.Background())
	require.NoError(t, err)

	got := rec.last()
	assert.Equal(t, "application/json", got.ContentType)
	assert.Equal(t, "Bearer tok", got.Auth)
}

func TestDoWithoutTokenSendsNoAuthorization(t *testing.T) {
	rec, srv := newRecorder(t)
	rec.on("GET /api/portfolio/skills", jsonHandler(http.StatusOK, `{"data":[]}`))

	c, _ := newTestClient(t, srv.URL, session.State{})
	_, err := c.ListSkills(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.last().Auth)
}

func TestListReturnsEmptySliceWhenDataMissing(t *testing.T) {
	rec, srv := newRecorder(t)
	rec.on("GET /api/portfolio/contact", jsonHandler(http.StatusOK, `{"success":true}`))

	c, _ := newTestClient(t, srv.URL, session.State{})
	msgs, err := c.ListMessages(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestNon2xxBecomesGenericError(t *testing.T) {
	rec, srv := newRecorder(t)
	rec.on("GET /api/portfolio/projects", jsonHandler(http.StatusInternalServerError, `{"message":"db exploded at row 7"}`))
	rec.on("DELETE /api/portfolio/skills/s1", jsonHandler(http.StatusNotFound, `{"message":"nope"}`))
	rec.on("GET /api/url", jsonHandler(http.StatusUnauthorized, `{}`))

	c, _ := newTestClient(t, srv.URL, session.State{})
	ctx := context.Background()

	_, err := c.ListProjects(ctx)
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch projects", err.Error())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))

	_, err = c.DeleteSkill(ctx, "s1")
	require.Error(t, err)
	assert.Equal(t, "Failed to delete skill", err.Error())

	_, err = c.ListURLs(ctx, 1, 10)
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch URLs", err.Error())
}

func TestTransportFailureIsReturnedAsIs(t *testing.T) {
	_, srv := newRecorder(t)
	base := srv.URL
	srv.Close()

	c, _ := newTestClient(t, base, session.State{})
	_, err := c.ListProjects(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnexpectedStatus))
}

func TestLoginPersistsTokenAndLogoutDropsIt(t *testing.T) {
	rec, srv := newRecorder(t)
	rec.on("POST /api/auth/login", jsonHandler(http.StatusOK, `{"success":true,"token":"fresh"}`))
	rec.on("POST /api/auth/logout", jsonHandler(http.StatusOK, `{"success":true}`))
	rec.on("GET /api/portfolio/projects", jsonHandler(http.StatusOK, `{"data":[]}`))

	c, sess := newTestClient(t, srv.URL, session.State{})
	ctx := context.Background()

	_, err := c.Login(ctx, "admin@example.com", "pw")
	require.NoError(t, err)

	var sent map[string]string
	require.NoError(t, json.Unmarshal(rec.last().Body, &sent))
	assert.Equal(t, map[string]string{"email": "admin@example.com", "password": "pw"}, sent)
	assert.True(t, sess.IsAuthenticated())

	_, err = c.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh", rec.last().Auth)

	require.NoError(t, c.Logout(ctx))
	assert.False(t, sess.IsAuthenticated())

	_, err = c.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, rec.last().Auth)
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	rec, srv := newRecorder(t)
	rec.on("POST /api/auth/login", jsonHandler(http.StatusUnauthorized, `{"success":false,"message":"Invalid email or password"}`))

	c, sess := newTestClient(t, srv.URL, session.State{})
	_, err := c.Login(context.Background(), "a@b.c", "bad")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.False(t, sess.IsAuthenticated())

	rec.on("POST /api/auth/login", jsonHandler(http.StatusBadGateway, `<html></html>`))
	_, err = c.Login(context.Background(), "a@b.c", "bad")
	require.Error(t, err)
	assert.Equal(t, "Login failed", err.Error())
}

func TestLogoutSucceedsWhenBackendUnreachable(t *testing.T) {
	_, srv := newRecorder(t)
	base := srv.URL
	srv.Close()

	c, sess := newTestClient(t, base, session.State{Token: "tok", IsAuthenticated: true})
	require.NoError(t, c.Logout(context.Background()))
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Token())
}

func TestCookiesAreIncluded(t *testing.T) {
	rec, srv := newRecorder(t)
	rec.on("POST /api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "cookie-tok", Path: "/"})
		jsonHandler(http.StatusOK, `{"success":true}`)(w, nil)
	})
	rec.on("GET /api/portfolio/skills", jsonHandler(http.StatusOK, `{"data":[]}`))

	c, sess := newTestClient(t, srv.URL, session.State{})
	ctx := context.Background()

	_, err := c.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Token(), "no token in the body means cookie-only auth")

	_, err = c.ListSkills(ctx)
	require.NoError(t, err)
	assert.Contains(t, rec.last().Cookie, "token=cookie-tok")
}

func TestCreateProjectEncoding(t *testing.T) {
	rec, srv := newRecorder(t)
	rec.on("POST /api/portfolio/projects", jsonHandler(http.StatusCreated, `{"success":true,"data":{"id":"p1"}}`))

	c, _ := newTestClient(t, srv.URL, session.State{})
	ctx := context.Background()

	t.Run("json when the image is a URL", func(t *testing.T) {
		raw, err := c.CreateProject(ctx, ProjectInput{
			Name:        "Site",
			Description: "My site",
			Thumbnail:   ImageFromURL("https://cdn.example.com/t.png"),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":{"id":"p1"}}`, string(raw))

		got := rec.last()
		assert.Equal(t, "application/json", got.ContentType)
		var sent map[string]string
		require.NoError(t, json.Unmarshal(got.Body, &sent))
		assert.Equal(t, "Site", sent["name"])
		assert.Equal(t, "https://cdn.example.com/t.png", sent["thumbnail"])
	})

	t.Run("multipart when a file is attached", func(t *testing.T) {
		file := upload.File{Name: "t.png", ContentType: "image/png", Size: 3, Data: []byte{1, 2, 3}}
		_, err := c.CreateProject(ctx, ProjectInput{Name: "Site", Description: "My site", Thumbnail: ImageFromFile(file)})
		require.NoError(t, err)

		got := rec.last()
		mediaType, params, err := mime.ParseMediaType(got.ContentType)
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)
		assert.NotEmpty(t, params["boundary"], "the boundary must survive")

		req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(string(got.Body)))
		require.NoError(t, err)
		req.Header.Set("Content-Type", got.ContentType)
		require.NoError(t, req.ParseMultipartForm(1<<20))

		assert.Equal(t, "Site", req.FormValue("name"))
		fh := req.MultipartForm.File["thumbnail"]
		require.Len(t, fh, 1)
		assert.Equal(t, "t.png", fh[0].Filename)
		assert.Equal(t, "image/png", fh[0].Header.Get("Content-Type"))
	})
}

func TestURLOperations(t *testing.T) {
	rec, srv := newRecorder(t)
	rec.on("GET /api/url", jsonHandler(http.StatusOK, `{"success":true,"data":{"urls":[{"id":"u1","clicks":4}],"pagination":{"currentPage":2,"totalPages":2,"totalUrls":11,"hasPrevPage":true}}}`))
	rec.on("POST /api/url", jsonHandler(http.StatusCreated, `{"success":true}`))
	rec.on("PUT /api/url/u1", jsonHandler(http.StatusOK, `{"success":true}`))
	rec.on("DELETE /api/url/u1", jsonHandler(http.StatusOK, ``))

	c, _ := newTestClient(t, srv.URL, session.State{})
	ctx := context.Background()

	page, err := c.ListURLs(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, "limit=10&page=2", rec.last().Query)
	assert.Len(t, page.URLs, 1)
	assert.Equal(t, 11, page.Pagination.TotalItems)
	assert.True(t, page.Pagination.HasPrev)

	_, err = c.ListURLs(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "limit=10&page=1", rec.last().Query)

	_, err = c.CreateURL(ctx, "https://example.com")
	require.NoError(t, err)
	assert.JSONEq(t, `{"fullUrl":"https://example.com"}`, string(rec.last().Body))

	_, err = c.UpdateURL(ctx, "u1", "https://example.org", "custom")
	require.NoError(t, err)
	assert.JSONEq(t, `{"fullUrl":"https://example.org","shortCode":"custom"}`, string(rec.last().Body))

	raw, err := c.DeleteURL(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, raw, "an empty body is not an error")
}

func TestUploadImage(t *testing.T) {
	rec, srv := newRecorder(t)
	c, _ := newTestClient(t, srv.URL, session.State{})
	ctx := context.Background()
	file := upload.File{Name: "a.png", ContentType: "image/png", Size: 1, Data: []byte{1}}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
		wantErr error
	}{
		{name: "flat", handler: jsonHandler(http.StatusOK, `{"url":"https://cdn/a.png"}`), want: "https://cdn/a.png"},
		{name: "nested", handler: jsonHandler(http.StatusOK, `{"data":{"url":"https://cdn/b.png"}}`), want: "https://cdn/b.png"},
		{name: "missing", handler: jsonHandler(http.StatusOK, `{}`), wantErr: ErrNoImageURL},
		{name: "rejected", handler: jsonHandler(http.StatusRequestEntityTooLarge, `{}`), wantErr: ErrUnexpectedStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.on("POST /api/upload", tt.handler)
			got, err := c.UploadImage(ctx, file)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(rec.last().ContentType, "multipart/form-data"))
		})
	}
}
