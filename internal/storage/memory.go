package storage

import "context"

// MemoryKV is an in-process KV. The zero value is not usable; call NewMemoryKV.
type MemoryKV struct {
	data map[string][]byte
	// Puts counts successful writes.
	Puts int
	// FailPut, when set, is returned by every Put.
	FailPut error
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string][]byte{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, data []byte) error {
	if m.FailPut != nil {
		return m.FailPut
	}
	m.data[key] = append([]byte(nil), data...)
	m.Puts++
	return nil
}
