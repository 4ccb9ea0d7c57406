// Package tracing records list operations as OpenTelemetry spans.
package tracing
