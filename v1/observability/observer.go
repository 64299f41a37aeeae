// Package observability defines the hook through which components report
// the operations they perform. Components accept an optional Observer and
// notify it after every operation; metrics and tracing backends implement it.
package observability

import "time"

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component is the reporting package, e.g. "serializer".
	Component string

	// Operation is the operation name, e.g. "deserialize".
	Operation string

	// Resource is the primary subject of the operation (a schema name).
	Resource string

	// SubResource adds context such as the wire format.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the error the operation returned, if any.
	Error error

	// Size is the payload size in bytes, or 0 when unknown.
	Size int64

	// Metadata carries additional operation specific fields.
	Metadata map[string]interface{}
}

// Observer receives completed operations. Implementations must be safe for
// concurrent use and must not retain or modify the Metadata map.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

func (f ObserverFunc) ObserveOperation(ctx OperationContext) { f(ctx) }

// Multi fans an operation out to every non-nil observer in order.
func Multi(observers ...Observer) Observer {
	var out multi
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

type multi []Observer

func (m multi) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		o.ObserveOperation(ctx)
	}
}
