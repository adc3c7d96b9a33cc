/*
Package metrics provides a client for recording plugin metrics through the
host runtime.

The package exposes constructors for Counter, Gauge, and Histogram metric
handles, each backed by protobuf payloads sent over waPC host calls. The
payment plugin uses them to count operations and scripted responses and to
time delegated ledger requests.

Emission follows Prometheus-style ergonomics: Inc/Dec/Observe do not return
errors, and marshal or host-call failures are swallowed. Discard returns a
client whose handles accept the same calls but never reach the host.
*/
package metrics
