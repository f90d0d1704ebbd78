// Package state persists the session on disk: two entries, a raw token file
// and a JSON principal file, under the application state directory.
package state

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/session"
)

const (
	tokenFile     = "token"
	principalFile = "principal.json"

	dirPerm  = 0o700
	filePerm = 0o600
)

type Storage struct {
	dir string
}

var _ session.Storage = (*Storage)(nil)

// Open prepares the state directory. An empty dir falls back to the
// configured stateDir.
func Open(dir string) (*Storage, error) {
	if dir == "" {
		dir = core.Conf.GetString("stateDir")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, errors.Wrapf(err, "creating state dir %s", dir)
	}
	return &Storage{dir: dir}, nil
}

func (st *Storage) read(name string) ([]byte, error) {
	data, err := ioutil.ReadFile(filepath.Join(st.dir, name))
	if os.IsNotExist(err) {
		return nil, session.ErrNoSession
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return data, nil
}

func (st *Storage) write(name string, data []byte) error {
	return errors.Wrapf(ioutil.WriteFile(filepath.Join(st.dir, name), data, filePerm), "writing %s", name)
}

func (st *Storage) ReadToken() (string, error) {
	data, err := st.read(tokenFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (st *Storage) ReadPrincipal() ([]byte, error) {
	return st.read(principalFile)
}

func (st *Storage) WriteToken(token string) error {
	return st.write(tokenFile, []byte(token))
}

func (st *Storage) WritePrincipal(data []byte) error {
	return st.write(principalFile, data)
}

func (st *Storage) Clear() error {
	for _, name := range []string{tokenFile, principalFile} {
		if err := os.Remove(filepath.Join(st.dir, name)); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "removing %s", name)
		}
	}
	return nil
}
