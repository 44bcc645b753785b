// Package store connects to the data store and manages the persisted
// timetable and chime history
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/belfry-dev/belfry/schedule"
)

// settingsKey versions the stored document implicitly; a schema change
// gets a new key and old payloads are simply ignored.
const settingsKey = "school-bell-settings@v1"

const (
	settingsBucket = "settings"
	chimesBucket   = "chimes"
)

var pathToDB string

var errDatabaseLocked = errors.New(
	"is belfry already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) SaveSettings(doc *schedule.Document) error {
	value, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(settingsKey), value)
	})
}

func (c *Client) Settings() (*schedule.Document, error) {
	var doc *schedule.Document

	err := c.View(func(tx *bolt.Tx) error {
		value := tx.Bucket([]byte(settingsBucket)).Get([]byte(settingsKey))
		if len(value) == 0 {
			return nil
		}

		var d schedule.Document
		if err := json.Unmarshal(value, &d); err != nil {
			// a corrupt payload is treated as absent
			return nil
		}

		doc = &d

		return nil
	})

	return doc, err
}

func (c *Client) RecordChime(rec *ChimeRecord) error {
	key := []byte(rec.RangAt.Format(time.RFC3339))

	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(chimesBucket)).Put(key, value)
	})
}

func (c *Client) RecentChimes(limit int) ([]*ChimeRecord, error) {
	var records []*ChimeRecord

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(chimesBucket)).Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			if limit > 0 && len(records) == limit {
				break
			}

			var rec ChimeRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				continue
			}

			records = append(records, &rec)
		}

		return nil
	})

	return records, err
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	c.DB = db.DB

	return nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

func openDB(dbFilePath string) (*Client, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		dbFilePath,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errDatabaseLocked
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{settingsBucket, chimesBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}

// NewClient returns a bolt-backed database client.
func NewClient(dbFilePath string) (*Client, error) {
	pathToDB = dbFilePath

	return openDB(dbFilePath)
}
