package storage

// Memory is an in-process Storage used by tests. It holds blobs in a map and
// copies values on the way in and out so a caller can't mutate stored state
// through a retained slice.
type Memory struct {
	items map[string][]byte
}

var _ Storage = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) GetItem(key string) ([]byte, error) {
	value, ok := m.items[key]
	if !ok {
		return nil, ErrNoItem
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) SetItem(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.items[key] = stored
	return nil
}

func (m *Memory) RemoveItem(key string) error {
	delete(m.items, key)
	return nil
}

func (m *Memory) Close() error {
	m.items = nil
	return nil
}
