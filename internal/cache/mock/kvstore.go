package mock

import (
	"sort"
	"strings"
	"sync"
)

// KVStore mocks cache.KVStore with a map.
type KVStore struct {
	data    map[string][]byte
	reads   int
	updates int
	err     error
	m       sync.Mutex
}

// NewKVStore creates new KVStore instance with given data.
func NewKVStore(data map[string][]byte) *KVStore {
	if data == nil {
		data = make(map[string][]byte)
	}
	return &KVStore{
		data: data,
	}
}

// FailWith makes all following calls return err. Nil restores normal behavior.
func (s *KVStore) FailWith(err error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.err = err
}

// ReadKey returns data saved for given key.
func (s *KVStore) ReadKey(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.err != nil {
		return nil, s.err
	}

	return s.data[string(key)], nil
}

// UpdateKey stores given data under given key.
func (s *KVStore) UpdateKey(key []byte, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.err != nil {
		return s.err
	}
	s.data[string(key)] = data

	return nil
}

// ScanPrefix calls fn for keys with given prefix, in key order.
func (s *KVStore) ScanPrefix(prefix []byte, fn func(key []byte, data []byte) error) error {
	s.m.Lock()
	defer s.m.Unlock()

	if s.err != nil {
		return s.err
	}

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := fn([]byte(k), s.data[k]); err != nil {
			return err
		}
	}

	return nil
}

// DeleteKeys removes given keys.
func (s *KVStore) DeleteKeys(keys ...[]byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	if s.err != nil {
		return s.err
	}
	for _, k := range keys {
		delete(s.data, string(k))
	}

	return nil
}

// Has reports whether key is stored.
func (s *KVStore) Has(key string) bool {
	s.m.Lock()
	defer s.m.Unlock()

	_, ok := s.data[key]
	return ok
}

// Reads returns read call count.
func (s *KVStore) Reads() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.reads
}

// Updates returns update call count.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.updates
}
