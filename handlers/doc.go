// Package handlers declares the studio server's routes.
//
// [Contact] exposes POST /api/contact on top of a contact relay. [SEO] serves
// robots.txt and sitemap.xml. [ErrorHandler], [NotFound] and [MethodNotAllowed]
// render every failure as {"error": "..."} so API clients see one shape.
package handlers
