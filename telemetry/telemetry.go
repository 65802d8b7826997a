// SPDX-License-Identifier: MIT
// Package telemetry wraps the module's expensive operations with
// OpenTelemetry spans, following the otel.Tracer("graph.<analysis>")
// pattern the retrieved Aleutian trace-graph analyses use for dominator
// and articulation-point computations: a package-level tracer, a span
// per call carrying size attributes, closed with defer.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("graphcuts")

// StartDominatorBuild opens a span around dominator.Build, annotated with
// the graph size and the requested root/mode.
func StartDominatorBuild(ctx context.Context, n, m, root int, mode string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "dominator.Build", trace.WithAttributes(
		attribute.Int("graph.vertices", n),
		attribute.Int("graph.edges", m),
		attribute.Int("dominator.root", root),
		attribute.String("dominator.mode", mode),
	))
}

// StartProvanShierSearch opens a span around provanshier.Search.
func StartProvanShierSearch(ctx context.Context, n, m, source, target int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "provanshier.Search", trace.WithAttributes(
		attribute.Int("graph.vertices", n),
		attribute.Int("graph.edges", m),
		attribute.Int("search.source", source),
		attribute.Int("search.target", target),
	))
}

// StartAllStCuts opens a span around the cuts.AllStCuts façade.
func StartAllStCuts(ctx context.Context, n, m, source, target int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "cuts.AllStCuts", trace.WithAttributes(
		attribute.Int("graph.vertices", n),
		attribute.Int("graph.edges", m),
		attribute.Int("cuts.source", source),
		attribute.Int("cuts.target", target),
	))
}

// StartAllStMinCuts opens a span around the cuts.AllStMinCuts façade.
func StartAllStMinCuts(ctx context.Context, n, m, source, target int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "cuts.AllStMinCuts", trace.WithAttributes(
		attribute.Int("graph.vertices", n),
		attribute.Int("graph.edges", m),
		attribute.Int("cuts.source", source),
		attribute.Int("cuts.target", target),
	))
}

// RecordError marks span as failed and attaches err, the way the
// Aleutian articulation-points analysis records context cancellation on
// its span before returning.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
