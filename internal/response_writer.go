package internal

import (
	"net/http"
	"sync/atomic"
)

// ResponseWriter records the status and body size of a response. The error
// handler checks Written so it never renders over a started response.
type ResponseWriter struct {
	http.ResponseWriter
	status  atomic.Int32
	size    atomic.Int64
	written atomic.Bool
}

// NewResponseWriter wraps w. The status reads 200 until a handler sets one.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	rw := &ResponseWriter{ResponseWriter: w}
	rw.status.Store(http.StatusOK)
	return rw
}

// WriteHeader forwards the first status code and drops the rest.
func (w *ResponseWriter) WriteHeader(code int) {
	if !w.written.CompareAndSwap(false, true) {
		return
	}
	w.status.Store(int32(code))
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.written.CompareAndSwap(false, true) {
		w.ResponseWriter.WriteHeader(int(w.status.Load()))
	}
	n, err := w.ResponseWriter.Write(b)
	w.size.Add(int64(n))
	return n, err
}

func (w *ResponseWriter) Status() int {
	return int(w.status.Load())
}

func (w *ResponseWriter) Size() int64 {
	return w.size.Load()
}

func (w *ResponseWriter) Written() bool {
	return w.written.Load()
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
