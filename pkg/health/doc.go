// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs. [ReadinessHandler]
// runs a set of named [Checks] in parallel and answers 503 if any fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mailer": relay.Healthcheck(),
//	}))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client asks for
// JSON with Accept: application/json or ?format=json:
//
//	{"status":"unhealthy","checks":{"mailer":{"status":"unhealthy","error":"contact: email service not configured"}}}
package health
