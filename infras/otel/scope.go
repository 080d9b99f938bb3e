package otel

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope is one span as seen by the code it measures.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type spanScope struct {
	span oteltrace.Span
}

func NewScope(span oteltrace.Span) Scope {
	return spanScope{span: span}
}

func (s spanScope) End() {
	s.span.End()
}

// TraceError marks the span failed. A nil error is ignored.
func (s spanScope) TraceError(err error) {
	if err == nil {
		return
	}

	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// TraceIfError records err when set. Deferred callers must wrap it in a closure so a named
// error result is read at return time.
func (s spanScope) TraceIfError(err error) {
	s.TraceError(err)
}

func (s spanScope) AddEvent(name string) {
	s.span.AddEvent(name)
}

func (s spanScope) SetAttribute(key string, value any) {
	s.span.SetAttributes(Attribute(key, value))
}

// SetAttributes writes every pair in one call, in key order.
func (s spanScope) SetAttributes(attributes map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))
	for _, key := range slices.Sorted(maps.Keys(attributes)) {
		kvs = append(kvs, Attribute(key, attributes[key]))
	}

	s.span.SetAttributes(kvs...)
}

// Attribute converts a value to the closest span attribute type. Amounts and other
// fmt.Stringer values such as decimals keep their exact text.
func Attribute(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case bool:
		return attribute.Bool(key, val)
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case time.Time:
		return attribute.String(key, val.Format(time.RFC3339))
	case fmt.Stringer:
		return attribute.String(key, val.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}
