package willowgui

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"
)

const bucketWindows = "windows"

// ErrClosedStore is returned by LayoutStore methods after Close.
var ErrClosedStore = errors.New("willowgui: layout store is closed")

// LayoutStore persists window styles across program runs in a bbolt
// database, one YAML document per window gwid.
type LayoutStore struct {
	db *bolt.DB
}

// OpenLayoutStore opens or creates the database at path.
func OpenLayoutStore(path string) (*LayoutStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("willowgui: open layout store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketWindows))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("willowgui: initialize layout store: %w", err)
	}
	return &LayoutStore{db: db}, nil
}

// Load returns the style saved for gwid. ok is false when there is none.
func (s *LayoutStore) Load(gwid string) (style WindowStyle, ok bool, err error) {
	if s.db == nil {
		return WindowStyle{}, false, ErrClosedStore
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketWindows)).Get([]byte(gwid))
		if v == nil {
			return nil
		}
		ok = true
		return yaml.Unmarshal(v, &style)
	})
	if err != nil {
		return WindowStyle{}, false, fmt.Errorf("willowgui: load layout %q: %w", gwid, err)
	}
	return style, ok, nil
}

// Save stores style under gwid, replacing any previous value.
func (s *LayoutStore) Save(gwid string, style WindowStyle) error {
	if s.db == nil {
		return ErrClosedStore
	}
	data, err := yaml.Marshal(style)
	if err != nil {
		return fmt.Errorf("willowgui: encode layout %q: %w", gwid, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketWindows)).Put([]byte(gwid), data)
	})
	if err != nil {
		return fmt.Errorf("willowgui: save layout %q: %w", gwid, err)
	}
	return nil
}

// Delete removes the style saved for gwid. Deleting a missing key is not an
// error.
func (s *LayoutStore) Delete(gwid string) error {
	if s.db == nil {
		return ErrClosedStore
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketWindows)).Delete([]byte(gwid))
	})
	if err != nil {
		return fmt.Errorf("willowgui: delete layout %q: %w", gwid, err)
	}
	return nil
}

// Gwids returns the saved window ids in byte order.
func (s *LayoutStore) Gwids() ([]string, error) {
	if s.db == nil {
		return nil, ErrClosedStore
	}
	var gwids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketWindows)).ForEach(func(k, _ []byte) error {
			gwids = append(gwids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("willowgui: list layouts: %w", err)
	}
	return gwids, nil
}

// Close closes the database. Closing twice is a no-op.
func (s *LayoutStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
