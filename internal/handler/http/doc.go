// Package http implements the gateway's HTTP transport.
//
// It wires the read-only notes API, the version endpoint and the Prometheus
// scrape endpoint behind a chi router. Request tracing, access logging,
// metrics and response compression are middleware in this package; the
// handlers delegate to the service layer.
package http
