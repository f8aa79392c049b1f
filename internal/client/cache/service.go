// Package cache хранит последние успешно полученные с сервера списки
// групп и расходов, чтобы dashboard мог показать их без сети.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/splitbill/internal/client/storage"
	"github.com/iudanet/splitbill/pkg/api"
)

// Имена снимков в snapshots bucket
const (
	snapshotGroups   = "groups"
	snapshotExpenses = "expenses"
)

// Service представляет кэш снимков поверх SnapshotStore
type Service struct {
	snapshots storage.SnapshotStore
}

// NewService создает новый кэш сервис
func NewService(snapshots storage.SnapshotStore) *Service {
	return &Service{
		snapshots: snapshots,
	}
}

// SaveGroups сохраняет снимок списка групп
func (s *Service) SaveGroups(ctx context.Context, groups []api.Group) error {
	return s.save(ctx, snapshotGroups, groups)
}

// Groups возвращает последний снимок списка групп и время его получения
func (s *Service) Groups(ctx context.Context) ([]api.Group, time.Time, error) {
	var groups []api.Group
	fetchedAt, err := s.load(ctx, snapshotGroups, &groups)
	if err != nil {
		return nil, time.Time{}, err
	}
	return groups, fetchedAt, nil
}

// SaveExpenses сохраняет снимок списка расходов
func (s *Service) SaveExpenses(ctx context.Context, expenses []api.Expense) error {
	return s.save(ctx, snapshotExpenses, expenses)
}

// Expenses возвращает последний снимок списка расходов и время его получения
func (s *Service) Expenses(ctx context.Context) ([]api.Expense, time.Time, error) {
	var expenses []api.Expense
	fetchedAt, err := s.load(ctx, snapshotExpenses, &expenses)
	if err != nil {
		return nil, time.Time{}, err
	}
	return expenses, fetchedAt, nil
}

// Clear удаляет все снимки. Вызывается на logout, чтобы данные одного
// пользователя не показались следующему.
func (s *Service) Clear(ctx context.Context) error {
	return s.snapshots.DeleteSnapshots(ctx)
}

func (s *Service) save(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", name, err)
	}

	snap := &storage.Snapshot{
		Data:      data,
		FetchedAt: time.Now().Unix(),
	}

	if err := s.snapshots.SaveSnapshot(ctx, name, snap); err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", name, err)
	}

	return nil
}

func (s *Service) load(ctx context.Context, name string, v any) (time.Time, error) {
	snap, err := s.snapshots.Snapshot(ctx, name)
	if err != nil {
		return time.Time{}, err
	}

	if err := json.Unmarshal(snap.Data, v); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal %s snapshot: %w", name, err)
	}

	return time.Unix(snap.FetchedAt, 0), nil
}
