package middlewares

import (
	"strings"

	"github.com/sengiku/studio/internal"
)

var permissionsPolicy = strings.Join([]string{
	"accelerometer=()",
	"autoplay=()",
	"camera=()",
	"display-capture=()",
	"encrypted-media=()",
	"fullscreen=(self)",
	"geolocation=()",
	"gyroscope=()",
	"magnetometer=()",
	"microphone=()",
	"midi=()",
	"payment=()",
	"usb=()",
}, ", ")

// ContentSecurityPolicy builds the site's CSP. In development, connect-src also
// allows local websocket connections on any port.
func ContentSecurityPolicy(dev bool) string {
	connect := "connect-src 'self'"
	if dev {
		connect = "connect-src 'self' ws://localhost:* ws://127.0.0.1:*"
	}

	return strings.Join([]string{
		"default-src 'none'",
		"base-uri 'none'",
		"form-action 'self'",
		"frame-ancestors 'none'",
		"img-src 'self' data:",
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com",
		"script-src 'self' 'unsafe-inline' 'unsafe-eval'",
		connect,
		"font-src 'self' data: https://fonts.gstatic.com",
		"manifest-src 'self'",
		"object-src 'none'",
		"media-src 'self'",
	}, "; ")
}

// SecureHeaders returns middleware that sets the site-wide security headers
// on every response, errors included.
func SecureHeaders(dev bool) internal.Middleware {
	headers := [][2]string{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"X-XSS-Protection", "0"},
		{"Permissions-Policy", permissionsPolicy},
		{"Content-Security-Policy", ContentSecurityPolicy(dev)},
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			for _, h := range headers {
				c.SetHeader(h[0], h[1])
			}
			return next(c)
		}
	}
}
