// Package live serves a document to remote viewers over WebSocket and
// routes their input back into the tree.
//
// A Server owns one dom.Document. All mutations, whether from viewer
// events or from the host through Do, run on a single event loop, which
// is the external synchronization the tree requires. Tree change
// notifications become binary patches (pkg/protocol) broadcast to every
// connected session; viewer input events resolve through the document's
// event-binding tokens and fire the node's handlers on the loop.
//
// The HTTP surface is a chi router: the serialized document, the
// WebSocket endpoint, a health check and optional Prometheus metrics.
// Event dispatch is traced with OpenTelemetry spans.
package live
