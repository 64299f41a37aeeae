package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulti(t *testing.T) {
	var calls []string
	first := ObserverFunc(func(ctx OperationContext) { calls = append(calls, "first:"+ctx.Operation) })
	second := ObserverFunc(func(ctx OperationContext) { calls = append(calls, "second:"+ctx.Operation) })

	obs := Multi(first, nil, second)
	obs.ObserveOperation(OperationContext{Operation: "deserialize"})

	assert.Equal(t, []string{"first:deserialize", "second:deserialize"}, calls)
}

func TestMulti_Empty(t *testing.T) {
	obs := Multi()
	assert.NotPanics(t, func() { obs.ObserveOperation(OperationContext{Operation: "serialize"}) })
}
