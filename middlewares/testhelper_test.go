package middlewares_test

import (
	"context"
	"net/http"
	"time"

	"github.com/sengiku/studio/internal"
)

// testContext drives a middleware without an App.
type testContext struct {
	request *http.Request
	rw      *internal.ResponseWriter
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{request: r, rw: internal.NewResponseWriter(w)}
}

func (c *testContext) Request() *http.Request {
	return c.request
}

func (c *testContext) Response() http.ResponseWriter {
	return c.rw
}

func (c *testContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *testContext) SetHeader(name, value string) {
	c.rw.Header().Set(name, value)
}

func (c *testContext) JSON(code int, _ any) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *testContext) String(code int, s string) error {
	return c.Blob(code, "text/plain; charset=utf-8", []byte(s))
}

func (c *testContext) Blob(code int, contentType string, b []byte) error {
	c.rw.Header().Set("Content-Type", contentType)
	c.rw.WriteHeader(code)
	_, err := c.rw.Write(b)
	return err
}

func (c *testContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *testContext) Written() bool {
	return c.rw.Written()
}

func (c *testContext) LogWarn(string, ...any) {}

func (c *testContext) LogError(string, ...any) {}

func (c *testContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *testContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *testContext) Err() error {
	return c.request.Context().Err()
}

func (c *testContext) Value(key any) any {
	return c.request.Context().Value(key)
}
