package database

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/jahir07/wp-user-feedback/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给 GORM 的增删改查和原始 SQL 加上 OpenTelemetry span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

type Option func(p *GormTracingPlugin)

// WithTracerProvider 默认使用全局的 TracerProvider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *GormTracingPlugin) {
		p.tracer = tp.Tracer(instrumentationName)
	}
}

func NewGormTracingPlugin(opts ...Option) *GormTracingPlugin {
	p := &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")),
		cb.Query().After("gorm:query").Register("tracing:after_query", p.after("SELECT")),
		cb.Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT")),
		cb.Create().After("gorm:create").Register("tracing:after_create", p.after("INSERT")),
		cb.Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")),
		cb.Update().After("gorm:update").Register("tracing:after_update", p.after("UPDATE")),
		cb.Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")),
		cb.Delete().After("gorm:delete").Register("tracing:after_delete", p.after("DELETE")),
		cb.Row().Before("gorm:row").Register("tracing:before_row", p.before("ROW")),
		cb.Row().After("gorm:row").Register("tracing:after_row", p.after("ROW")),
		cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")),
		cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after("RAW")),
	)
}

func (p *GormTracingPlugin) before(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		name := "SQL " + operation
		if db.Statement.Table != "" {
			name = fmt.Sprintf("%s %s", db.Statement.Table, operation)
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name,
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()

		attrs := []attribute.KeyValue{
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", operation),
			attribute.String("db.statement", db.Statement.SQL.String()),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		if db.Statement.Table != "" {
			attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
		}
		span.SetAttributes(attrs...)

		// 查不到数据是业务上的正常情况
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
