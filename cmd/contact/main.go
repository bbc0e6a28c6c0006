// Command contact submits one message to a running contact relay, the same way
// the site's contact form does, and prints the notifications it would show.
//
// Usage:
//
//	contact --name Ada --email ada@example.com --message "Hello" [--subject "Hi"] [--endpoint URL]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sengiku/studio/pkg/contactform"
	"github.com/sengiku/studio/pkg/logger"
)

const defaultEndpoint = "http://localhost:8080/api/contact"

func main() {
	endpoint := flag.String("endpoint", envOr("CONTACT_ENDPOINT", defaultEndpoint), "Contact relay URL")
	name := flag.String("name", "", "Sender name (required)")
	email := flag.String("email", "", "Sender email (required)")
	subject := flag.String("subject", "", "Message subject (optional)")
	message := flag.String("message", "", "Message body (required)")
	timeout := flag.Duration("timeout", 30*time.Second, "Request timeout")
	debug := flag.Bool("debug", false, "Log request details to stderr")
	flag.Parse()

	log := logger.NewNope()
	if *debug {
		log = logger.NewWithConfig(logger.Config{Level: "debug", Format: "text"})
	}

	form := contactform.New(*endpoint, contactform.NewWriterNotifier(os.Stdout),
		contactform.WithSubject(),
		contactform.WithHTTPClient(&http.Client{Timeout: *timeout}),
		contactform.WithLogger(log),
	)

	values := map[contactform.Field]string{
		contactform.FieldName:    *name,
		contactform.FieldEmail:   *email,
		contactform.FieldSubject: *subject,
		contactform.FieldMessage: *message,
	}
	for field, value := range values {
		if err := form.Set(field, value); err != nil {
			fail(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := form.Submit(ctx); err != nil {
		if errors.Is(err, contactform.ErrRequiredField) {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			flag.Usage()
			os.Exit(2)
		}
		fail(err)
	}

	if form.State() != contactform.StateSuccess {
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
