package ledger

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelKV implements KV on top of a LevelDB database.
type LevelKV struct {
	db *leveldb.DB
}

// OpenLevelKV opens (or creates) a LevelDB database at path.
func OpenLevelKV(path string) (*LevelKV, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %q: %w", path, err)
	}
	return &LevelKV{db: db}, nil
}

// Get returns the value stored under key.
func (l *LevelKV) Get(key []byte) ([]byte, bool, error) {
	v, err := l.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Put stores value under key.
func (l *LevelKV) Put(key, value []byte) error {
	return l.db.Put(key, value, nil)
}

// Close closes the underlying database.
func (l *LevelKV) Close() error {
	return l.db.Close()
}
