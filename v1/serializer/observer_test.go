package serializer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libcat/ilsrecord/v1/observability"
	"github.com/libcat/ilsrecord/v1/schema"
)

// TestObserver is a mock observer for testing.
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

// recordingLogger keeps warn and error messages.
type recordingLogger struct {
	mu     sync.Mutex
	warns  []string
	errors []string
}

func (l *recordingLogger) Debug(string, error, ...map[string]interface{}) {}

func (l *recordingLogger) Warn(msg string, _ error, _ ...map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(msg string, _ error, _ ...map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func TestObserveOperation_Deserialize(t *testing.T) {
	obs := &TestObserver{}
	ser, err := NewJSON(taggedSchema(), WithObserver(obs))
	require.NoError(t, err)

	payload := `{"id":"7","tags":["x"]}`
	_, err = ser.Deserialize(payload)
	require.NoError(t, err)

	ops := obs.GetOperations()
	require.Len(t, ops, 1)
	assert.Equal(t, "serializer", ops[0].Component)
	assert.Equal(t, "deserialize", ops[0].Operation)
	assert.Equal(t, "item", ops[0].Resource)
	assert.Equal(t, "json", ops[0].SubResource)
	assert.Equal(t, int64(len(payload)), ops[0].Size)
	assert.NoError(t, ops[0].Error)
	assert.GreaterOrEqual(t, ops[0].Duration, time.Duration(0))
}

func TestObserveOperation_SerializeAndErrors(t *testing.T) {
	obs := &TestObserver{}
	log := &recordingLogger{}
	ser, err := NewXML(taggedSchema(), WithObserver(obs), WithLogger(log))
	require.NoError(t, err)

	out, err := ser.Serialize(schema.Values{"id": int64(1)})
	require.NoError(t, err)

	_, err = ser.Deserialize("<item><tags></item>")
	require.Error(t, err)

	ops := obs.GetOperations()
	require.Len(t, ops, 2)
	assert.Equal(t, "serialize", ops[0].Operation)
	assert.Equal(t, int64(len(out.([]byte))), ops[0].Size)
	assert.Equal(t, "deserialize", ops[1].Operation)
	assert.Error(t, ops[1].Error)
	assert.Len(t, log.errors, 1)
}

func TestObserveOperation_NothingToParse(t *testing.T) {
	obs := &TestObserver{}
	ser, err := NewJSON(taggedSchema(), WithObserver(obs))
	require.NoError(t, err)

	_, err = ser.Deserialize(42)
	require.NoError(t, err)
	assert.Empty(t, obs.GetOperations())
}

func TestMulti(t *testing.T) {
	a, b := &TestObserver{}, &TestObserver{}
	ser, err := NewHash(taggedSchema(), WithObserver(observability.Multi(a, nil, b)))
	require.NoError(t, err)

	_, err = ser.Deserialize(map[string]any{"id": 1})
	require.NoError(t, err)
	assert.Len(t, a.GetOperations(), 1)
	assert.Len(t, b.GetOperations(), 1)
}
