package repository

import (
	"context"
	"errors"
	"time"
)

// Record keys. Each names one JSON document.
const (
	KeyUserConfig   = "user_config"
	KeyAssets       = "assets"
	KeyExchangeRate = "exchange_rate"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrCorrupted = errors.New("record corrupted")
)

// Records is a small key/value store for the JSON records. Get returns
// ErrNotFound when the key has never been written.
type Records interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
}

// Quarantiner is implemented by backends that can move an unreadable record
// aside so that a fresh one can be written under the same key.
type Quarantiner interface {
	Quarantine(ctx context.Context, key string) (string, error)
}

// BackupName is the name a quarantined record is kept under.
func BackupName(name string, at time.Time) string {
	return name + ".backup." + at.Format("20060102_150405")
}
