package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

// boltBucketPalettes holds one JSON-encoded Palette per key, keyed by
// palette name.
const boltBucketPalettes = "palettes"

// Bolt is a bbolt-backed Store. A single file on disk, safe for
// concurrent use within one process.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt opens (creating if needed) a palette database at path. The
// parent directory is created when missing.
func NewBolt(path string) (*Bolt, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open palette store: %w", err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketPalettes))
		return err
	}); err != nil {
		_ = instance.Close()
		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Close closes the underlying database file.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

// Put saves the palette, overwriting any prior palette with the same
// name.
func (b *Bolt) Put(p *Palette) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrEmptyName
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketPalettes)).Put([]byte(name), data)
	})
}

// Get returns the palette stored under name. An unparseable record is
// treated the same as a missing one.
func (b *Bolt) Get(name string) (*Palette, error) {
	var p Palette
	found := false

	err := b.storage.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketPalettes)).Get([]byte(name))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &p); err != nil {
			// Corrupt record: degrade to not-found rather than failing.
			return nil
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &p, nil
}

// List returns every stored palette, sorted by name. Unparseable
// records are skipped.
func (b *Bolt) List() ([]Palette, error) {
	var out []Palette

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketPalettes)).ForEach(func(_, v []byte) error {
			var p Palette
			if err := json.Unmarshal(v, &p); err != nil {
				return nil
			}
			out = append(out, p)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the palette stored under name. Deleting a missing
// name reports ErrNotFound so callers can tell the user.
func (b *Bolt) Delete(name string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketPalettes))
		if bucket.Get([]byte(name)) == nil {
			return ErrNotFound
		}
		return bucket.Delete([]byte(name))
	})
}
