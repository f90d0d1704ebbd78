// Package dummystate is an in-memory session.Storage for tests.
package dummystate

import (
	"sync"

	"github.com/trezcool/safari/core/session"
)

type Storage struct {
	mu        sync.Mutex
	token     *string
	principal []byte

	// FailWrites makes every write fail, for exercising degraded persistence.
	FailWrites error
}

var _ session.Storage = (*Storage)(nil)

func Open() *Storage {
	return &Storage{}
}

func (st *Storage) ReadToken() (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.token == nil {
		return "", session.ErrNoSession
	}
	return *st.token, nil
}

func (st *Storage) ReadPrincipal() ([]byte, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.principal == nil {
		return nil, session.ErrNoSession
	}
	data := make([]byte, len(st.principal))
	copy(data, st.principal)
	return data, nil
}

func (st *Storage) WriteToken(token string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.FailWrites != nil {
		return st.FailWrites
	}
	st.token = &token
	return nil
}

func (st *Storage) WritePrincipal(data []byte) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.FailWrites != nil {
		return st.FailWrites
	}
	st.principal = make([]byte, len(data))
	copy(st.principal, data)
	return nil
}

func (st *Storage) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.token = nil
	st.principal = nil
	return nil
}
