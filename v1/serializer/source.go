package serializer

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/libcat/ilsrecord/v1/schema"
)

// SourceStore keeps raw source payloads for diagnostics, for example to show
// the last response of each ILS record type on a status page.
type SourceStore interface {
	Put(key string, data any)
	Get(key string) (any, bool)
}

// SourceKey is the key under which payloads of s in format f are stored.
func SourceKey(s *schema.Schema, f schema.Format) string {
	return s.Name() + "/" + f.String()
}

// MemoryStore is a concurrency-safe in-memory SourceStore holding the most
// recent payload per key.
type MemoryStore struct {
	entries *xsync.MapOf[string, any]
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: xsync.NewMapOf[string, any]()}
}

func (m *MemoryStore) Put(key string, data any) {
	m.entries.Store(key, data)
}

func (m *MemoryStore) Get(key string) (any, bool) {
	return m.entries.Load(key)
}

// Len returns the number of stored keys.
func (m *MemoryStore) Len() int {
	return m.entries.Size()
}
