package instrument

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/topiary-ui/topiary/pkg/dom"
	"github.com/topiary-ui/topiary/pkg/vdom"
)

// Default tracer name for render spans.
const defaultTracerName = "topiary"

// AttributeExtractor extracts custom span attributes from the container
// before each traced render.
type AttributeExtractor func(container *dom.Node) []attribute.KeyValue

// Config configures an Instrumenter.
type Config struct {
	// Namespace is the metrics namespace (default: "topiary").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer

	// TracerName is the OpenTelemetry tracer name (default: "topiary").
	TracerName string

	// AttributeExtractor extracts custom span attributes from the
	// container before each traced render.
	AttributeExtractor AttributeExtractor

	// Reconciler is the reconciler driven by Render.
	// Default: vdom.New()
	Reconciler *vdom.Reconciler
}

// Option configures an Instrumenter.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the render duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithTracerName sets the OpenTelemetry tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithAttributeExtractor sets a custom span attribute extractor.
func WithAttributeExtractor(extractor AttributeExtractor) Option {
	return func(c *Config) {
		c.AttributeExtractor = extractor
	}
}

// WithReconciler sets the reconciler driven by Render.
func WithReconciler(rec *vdom.Reconciler) Option {
	return func(c *Config) {
		c.Reconciler = rec
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:  "topiary",
		Buckets:    prometheus.DefBuckets,
		Registry:   prometheus.DefaultRegisterer,
		TracerName: defaultTracerName,
	}
}

// Instrumenter drives a reconciler and records metrics and traces for
// every render pass.
//
// The metric instruments are registered with the configured registry when
// New is called, so create one Instrumenter per registry and reuse it.
type Instrumenter struct {
	config  Config
	metrics *metrics
	tracer  trace.Tracer
	rec     *vdom.Reconciler
}

// New returns an Instrumenter with the given options applied.
func New(opts ...Option) *Instrumenter {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	rec := config.Reconciler
	if rec == nil {
		rec = vdom.New()
	}

	return &Instrumenter{
		config:  config,
		metrics: newMetrics(config),
		tracer:  otel.Tracer(config.TracerName),
		rec:     rec,
	}
}

// Render reconciles container's children against next, recording a span
// for the pass and updating the Prometheus instruments with its duration,
// the mutations applied, and the resulting document size.
func (in *Instrumenter) Render(ctx context.Context, container *dom.Node, next ...*vdom.VNode) {
	if container == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("topiary.container", container.TagName()),
		attribute.Int("topiary.children", len(next)),
	}
	if in.config.AttributeExtractor != nil {
		attrs = append(attrs, in.config.AttributeExtractor(container)...)
	}

	_, span := in.tracer.Start(ctx, "topiary.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	doc := container.Document()
	ops := make(map[dom.Op]int)
	cancel := doc.Observe(func(m dom.Mutation) {
		ops[m.Op]++
	})

	start := time.Now()
	in.rec.Render(container, next...)
	seconds := time.Since(start).Seconds()
	cancel()

	total := 0
	for _, count := range ops {
		total += count
	}

	in.metrics.record(seconds, ops, doc.NodeCount())

	span.SetAttributes(attribute.Int("topiary.mutations", total))
	span.SetStatus(codes.Ok, "")
}
