package store

import "github.com/quickrecipe/console/internal/domain"

// Nop is the history store used when history is disabled.
type Nop struct{}

func (Nop) Insert(domain.HistoryRecord) error { return nil }

func (Nop) ListSession(string, int) ([]domain.HistoryRecord, error) { return nil, nil }

func (Nop) Close() error { return nil }

var _ domain.HistoryStore = Nop{}
