package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/go-drift/drawer/pkg/drawer"
)

// Span and attribute names recorded for a drag.
const (
	SpanDrag = "drawer.drag"

	AttrStartY      = "drawer.start_y"
	AttrFinalY      = "drawer.final_y"
	AttrVelocity    = "drawer.velocity"
	AttrFromIndex   = "drawer.from_index"
	AttrTargetIndex = "drawer.target_index"
	AttrClosed      = "drawer.closed"
	AttrCancelled   = "drawer.cancelled"
)

// DrawerObserver records one span per drag and logs lifecycle changes.
type DrawerObserver struct {
	ctx    context.Context
	tracer oteltrace.Tracer
	logger *zap.Logger

	span oteltrace.Span
}

var _ drawer.Observer = (*DrawerObserver)(nil)

// NewDrawerObserver creates an observer. A nil logger discards logs.
func NewDrawerObserver(ctx context.Context, tracer oteltrace.Tracer, logger *zap.Logger) *DrawerObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DrawerObserver{ctx: ctx, tracer: tracer, logger: logger}
}

func (o *DrawerObserver) OnDragStart(y float64) {
	if o.span != nil {
		o.span.SetStatus(codes.Error, "drag restarted before release")
		o.span.End()
	}
	_, o.span = o.tracer.Start(o.ctx, SpanDrag,
		oteltrace.WithAttributes(attribute.Float64(AttrStartY, y)))
	o.logger.Debug("drag started", zap.Float64("y", y))
}

func (o *DrawerObserver) OnDragEnd(r drawer.Release) {
	o.logger.Debug("drag released",
		zap.Float64("final_y", r.FinalY),
		zap.Float64("velocity", r.Velocity),
		zap.Int("target", r.Target),
		zap.Bool("close", r.Close),
		zap.Bool("cancelled", r.Cancelled),
	)
	if o.span == nil {
		return
	}
	o.span.SetAttributes(
		attribute.Float64(AttrFinalY, r.FinalY),
		attribute.Float64(AttrVelocity, r.Velocity),
		attribute.Int(AttrFromIndex, r.From),
		attribute.Int(AttrTargetIndex, r.Target),
		attribute.Bool(AttrClosed, r.Close),
		attribute.Bool(AttrCancelled, r.Cancelled),
	)
	o.span.End()
	o.span = nil
}

func (o *DrawerObserver) OnSnap(index int, y float64) {
	o.logger.Debug("snapped", zap.Int("index", index), zap.Float64("y", y))
	if o.span != nil {
		o.span.AddEvent("drawer.snap", oteltrace.WithAttributes(
			attribute.Int("index", index),
			attribute.Float64("y", y),
		))
	}
}

func (o *DrawerObserver) OnOpenChange(open bool) {
	if open {
		o.logger.Info("drawer opened")
	} else {
		o.logger.Info("drawer closed")
	}
}
