package record

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/libcat/ilsrecord/v1/logger"
	"github.com/libcat/ilsrecord/v1/observability"
	"github.com/libcat/ilsrecord/v1/schema"
	"github.com/libcat/ilsrecord/v1/serializer"
)

// TestObserver collects every observed operation.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) GetOperations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

func TestFactory_FXModule(t *testing.T) {
	obs := &TestObserver{}
	store := serializer.NewMemoryStore()

	var f *Factory
	app := fxtest.New(t,
		fx.Supply(logger.NewNop()),
		fx.Provide(
			fx.Annotate(
				func() observability.Observer { return obs },
				fx.ResultTags(`group:"observers"`),
			),
			fx.Annotate(
				func() *serializer.MemoryStore { return store },
				fx.As(new(serializer.SourceStore)),
			),
		),
		FXModule,
		fx.Populate(&f),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, f)

	rec, err := f.New(patronSchema, patronJSON)
	require.NoError(t, err)
	assert.Equal(t, "Ada", rec.String("name"))

	ops := obs.GetOperations()
	require.Len(t, ops, 1)
	assert.Equal(t, "serializer", ops[0].Component)
	assert.Equal(t, "deserialize", ops[0].Operation)

	_, ok := store.Get(serializer.SourceKey(patronSchema, schema.JSON))
	assert.True(t, ok)
}

func TestFactory_WithoutDependencies(t *testing.T) {
	f := NewFactory(FactoryParams{})

	rec := f.Load(patronSchema, nil)
	assert.True(t, rec.IsError())
	assert.ErrorIs(t, rec.Err(), ErrNoSourceData)

	rec = f.FromError(patronSchema, errors.New("boom"), WithFormat(schema.XML))
	assert.Equal(t, schema.XML, rec.Format())
	assert.Equal(t, "unavailable", rec.String("status"))

	rec, err := f.New(patronSchema, patronXML)
	require.NoError(t, err)
	assert.Equal(t, schema.XML, rec.Format())
}

func TestFactory_CallOptionsOverride(t *testing.T) {
	obs := &TestObserver{}
	f := NewFactory(FactoryParams{Observers: []observability.Observer{obs}})

	_, err := f.New(patronSchema, patronXML, WithFormat(schema.JSON))
	require.Error(t, err)

	ops := obs.GetOperations()
	require.Len(t, ops, 1)
	assert.Equal(t, "json", ops[0].SubResource)
	assert.Error(t, ops[0].Error)
}
