// Package instrument adds Prometheus metrics and OpenTelemetry tracing
// around tree reconciliation.
//
// An Instrumenter wraps a Reconciler and observes every render it
// performs: how long it took, how many mutations of each kind it applied
// to the live document, and how large the document is afterwards.
//
// Metrics collected:
//   - topiary_renders_total: Counter of render passes
//   - topiary_render_duration_seconds: Histogram of render duration
//   - topiary_mutations_total: Counter of document mutations by op
//   - topiary_live_nodes: Gauge of nodes in the live document
//
// Example:
//
//	in := instrument.New(
//	    instrument.WithNamespace("myapp"),
//	    instrument.WithRegistry(registry),
//	)
//	in.Render(ctx, container, children...)
//
// Tracing uses the global OpenTelemetry tracer provider and is a no-op
// until one is configured:
//
//	otel.SetTracerProvider(tp)
package instrument
