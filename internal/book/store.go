package book

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Store is a badger-backed opening book on disk. Keys are four-field
// position keys; values are JSON-encoded coordinate-move lists. The store
// belongs to the wrapping process: the engine core itself owns no
// persistent state.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) a book database at the given path.
func OpenStore(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open book store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores the move list for a position key.
func (s *Store) Put(key string, moves []string) error {
	if len(moves) == 0 {
		return fmt.Errorf("book store: empty move list for %q", key)
	}

	data, err := json.Marshal(moves)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Get returns the move list for a position key, or ok=false when absent.
func (s *Store) Get(key string) ([]string, bool, error) {
	var moves []string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &moves)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return moves, true, nil
}

// LoadInto merges every stored entry into the book, overriding builtin
// lines for the same position.
func (s *Store) LoadInto(b *Book) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())

			var moves []string
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &moves)
			})
			if err != nil {
				return fmt.Errorf("book store: entry %q: %w", key, err)
			}
			b.Add(key, moves)
		}
		return nil
	})
}
