package state

import "errors"

// fakeStore is an in-memory storage.Store that counts writes and can be
// forced to fail, so tests can observe the hydrate/flush protocol.
type fakeStore struct {
	docs      map[string][]byte
	writes    int
	deletes   int
	failRead  bool
	failWrite bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string][]byte)}
}

func (s *fakeStore) Read(key string) ([]byte, bool, error) {
	if s.failRead {
		return nil, false, errors.New("storage unavailable")
	}
	data, ok := s.docs[key]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func (s *fakeStore) Write(key string, data []byte) error {
	if s.failWrite {
		return errors.New("quota exceeded")
	}
	s.writes++
	s.docs[key] = append([]byte(nil), data...)
	return nil
}

func (s *fakeStore) Delete(key string) error {
	s.deletes++
	delete(s.docs, key)
	return nil
}
