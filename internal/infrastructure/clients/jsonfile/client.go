package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// Database is the single persisted document: every collection, top level.
// Records reference each other by identifier only.
type Database struct {
	Users    []*entities.User    `json:"users"`
	Vehicles []*entities.Vehicle `json:"vehicles"`
	Stations []*entities.Station `json:"stations"`
	Trips    []*entities.Trip    `json:"trips"`
	Reviews  []*entities.Review  `json:"reviews"`
	Reports  []*entities.Report  `json:"reports"`
	Claims   []*entities.Claim   `json:"claims"`
}

// Client is the flat-file JSON store. The whole database lives in memory and
// is rewritten to disk on every mutation. All access goes through View and
// Update, which serialize writers behind one process-wide lock; the store
// adapters are the only callers.
type Client struct {
	path string

	mu sync.RWMutex
	db *Database
}

// NewClient loads the database at path, creating an empty one if the file
// does not exist yet.
func NewClient(path string) (*Client, error) {
	c := &Client{path: path, db: &Database{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, c.db); err != nil {
			return nil, fmt.Errorf("failed to parse store file: %w", err)
		}
	}

	return c, nil
}

// View runs fn with shared read access to the database. fn must not mutate
// anything it reads; copy records before returning them.
func (c *Client) View(fn func(db *Database) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fn(c.db)
}

// Update runs fn against a copy of the database and swaps the copy in only
// after a successful persist. If fn or the write fails, neither memory nor
// disk changes, so readers never observe an unpersisted mutation.
func (c *Client) Update(fn func(db *Database) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.copyDatabase()
	if err != nil {
		return err
	}
	if err := fn(next); err != nil {
		return err
	}
	if err := c.persist(next); err != nil {
		return err
	}

	c.db = next
	return nil
}

// copyDatabase deep-copies the database through the codec.
func (c *Client) copyDatabase() (*Database, error) {
	data, err := json.Marshal(c.db)
	if err != nil {
		return nil, fmt.Errorf("failed to copy store: %w", err)
	}
	next := &Database{}
	if err := json.Unmarshal(data, next); err != nil {
		return nil, fmt.Errorf("failed to copy store: %w", err)
	}
	return next, nil
}

// persist writes the database through a temp file with fsync and rename so a
// crash mid-write never corrupts the store.
func (c *Client) persist(db *Database) error {
	data, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	tmp := c.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, c.path)
}
