// Package config loads environment configuration into tagged structs.
//
// Each package owns its settings as a struct tagged for caarlos0/env
// (logger.Config, resend.Config, contact.Config); [Config] composes them for the
// server. [Load] first reads an optional .env file with godotenv:
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Variables:
//
//	ADDRESS                 listen address (:8080)
//	APP_ENV                 production unless set; anything else relaxes the CSP
//	SITE_URL                canonical site URL for robots.txt and sitemap.xml
//	CORS_ALLOWED_ORIGINS    comma-separated origins for /api (any origin when empty)
//	SHUTDOWN_TIMEOUT        graceful shutdown budget (30s)
//	LOG_LEVEL, LOG_FORMAT   debug|info|warn|error, json|text
//	SENTRY_DSN              enables Sentry fan-out
//	RESEND_API_KEY          email provider credential; sending is disabled without it
//	RESEND_BASE_URL         provider endpoint (https://api.resend.com)
//	RESEND_TIMEOUT          provider HTTP client timeout (10s)
//	CONTACT_TO_EMAIL        inbox receiving submissions
//	CONTACT_FROM_EMAIL      sender, "addr" or "Name <addr>"; malformed values fall back
//	CONTACT_SEND_TIMEOUT    bound on one relay dispatch (10s)
//	CONTACT_SANITIZE_HTML   strip markup from submitted values (false)
package config
