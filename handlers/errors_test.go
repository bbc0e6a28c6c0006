package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sengiku/studio"
	"github.com/sengiku/studio/handlers"
	"github.com/sengiku/studio/middlewares"
)

type routes func(studio.Router)

func (f routes) Routes(r studio.Router) { f(r) }

func serveError(t *testing.T, err error, recoverPanics bool) *httptest.ResponseRecorder {
	t.Helper()

	var mw []studio.Middleware
	if recoverPanics {
		mw = append(mw, middlewares.Recover())
	}

	app := studio.New(
		studio.WithMiddleware(mw...),
		studio.WithErrorHandler(handlers.ErrorHandler),
		studio.WithNotFoundHandler(handlers.NotFound),
		studio.WithHandlers(routes(func(r studio.Router) {
			r.GET("/fail", func(studio.Context) error { return err })
			r.GET("/panic", func(studio.Context) error { panic("boom") })
		})),
	)

	path := "/fail"
	if recoverPanics {
		path = "/panic"
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		status   int
		response string
	}{
		{"plain error hides detail", errors.New("db password wrong"), http.StatusInternalServerError, `{"error":"Unexpected error"}`},
		{"client http error keeps message", studio.NewHTTPError(http.StatusBadRequest, "bad input"), http.StatusBadRequest, `{"error":"bad input"}`},
		{"http error without message", studio.NewHTTPError(http.StatusConflict, ""), http.StatusConflict, `{"error":"Conflict"}`},
		{"server http error hides message", studio.NewHTTPError(http.StatusServiceUnavailable, "redis down"), http.StatusServiceUnavailable, `{"error":"Unexpected error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serveError(t, tt.err, false)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.response, rec.Body.String())
		})
	}
}

func TestErrorHandler_Panic(t *testing.T) {
	t.Parallel()

	rec := serveError(t, nil, true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Unexpected error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	app := studio.New(
		studio.WithNotFoundHandler(handlers.NotFound),
		studio.WithHandlers(routes(func(r studio.Router) {
			r.GET("/", func(c studio.Context) error { return c.String(http.StatusOK, "home") })
		})),
	)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
