package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/models"
	repo "github.com/baharkarakas/mindbank/internal/repository"
)

type memRecords struct {
	mu          sync.Mutex
	data        map[string][]byte
	quarantined []string
	putErr      error
	getErr      error
}

func newMemRecords() *memRecords { return &memRecords{data: map[string][]byte{}} }

func (m *memRecords) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return b, nil
}

func (m *memRecords) Put(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = append([]byte(nil), payload...)
	return nil
}

func (m *memRecords) Quarantine(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	backup := key + ".backup"
	m.data[backup] = b
	delete(m.data, key)
	m.quarantined = append(m.quarantined, key)
	return backup, nil
}

var errDiskFull = errors.New("disk full")

type fixedRate struct{ rate models.ExchangeRate }

func (f fixedRate) Current(context.Context) models.ExchangeRate { return f.rate }

func rateOf(s string, src models.RateSource) fixedRate {
	return fixedRate{models.ExchangeRate{Rate: decimal.RequireFromString(s), Source: src, FetchedAt: time.Now()}}
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
