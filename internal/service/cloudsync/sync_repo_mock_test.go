package cloudsync

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

var _ syncRepo = &syncRepoMock{}

type syncRepoMock struct {
	ListFlowersFunc         func(ctx context.Context, account string) ([]domain.Flower, error)
	UpsertFlowersFunc       func(ctx context.Context, account string, flowers []domain.Flower) error
	DeleteFlowersExceptFunc func(ctx context.Context, account string, keep []uuid.UUID) (int, error)
	GetMetadataFunc         func(ctx context.Context, account string) (domain.SyncMetadata, error)
	PutMetadataFunc         func(ctx context.Context, account string, m domain.SyncMetadata) error
	DeleteAccountFunc       func(ctx context.Context, account string) error

	calls struct {
		UpsertFlowers []struct {
			Account string
			Flowers []domain.Flower
		}
		DeleteFlowersExcept []struct {
			Account string
			Keep    []uuid.UUID
		}
		PutMetadata []struct {
			Account string
			M       domain.SyncMetadata
		}
		DeleteAccount []struct {
			Account string
		}
	}
	lock sync.RWMutex
}

func (mock *syncRepoMock) ListFlowers(ctx context.Context, account string) ([]domain.Flower, error) {
	if mock.ListFlowersFunc == nil {
		panic("syncRepoMock.ListFlowersFunc: method is nil but syncRepo.ListFlowers was just called")
	}
	return mock.ListFlowersFunc(ctx, account)
}

func (mock *syncRepoMock) UpsertFlowers(ctx context.Context, account string, flowers []domain.Flower) error {
	if mock.UpsertFlowersFunc == nil {
		panic("syncRepoMock.UpsertFlowersFunc: method is nil but syncRepo.UpsertFlowers was just called")
	}
	mock.lock.Lock()
	mock.calls.UpsertFlowers = append(mock.calls.UpsertFlowers, struct {
		Account string
		Flowers []domain.Flower
	}{account, flowers})
	mock.lock.Unlock()
	return mock.UpsertFlowersFunc(ctx, account, flowers)
}

func (mock *syncRepoMock) UpsertFlowersCalls() []struct {
	Account string
	Flowers []domain.Flower
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpsertFlowers
}

func (mock *syncRepoMock) DeleteFlowersExcept(ctx context.Context, account string, keep []uuid.UUID) (int, error) {
	if mock.DeleteFlowersExceptFunc == nil {
		panic("syncRepoMock.DeleteFlowersExceptFunc: method is nil but syncRepo.DeleteFlowersExcept was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteFlowersExcept = append(mock.calls.DeleteFlowersExcept, struct {
		Account string
		Keep    []uuid.UUID
	}{account, keep})
	mock.lock.Unlock()
	return mock.DeleteFlowersExceptFunc(ctx, account, keep)
}

func (mock *syncRepoMock) DeleteFlowersExceptCalls() []struct {
	Account string
	Keep    []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteFlowersExcept
}

func (mock *syncRepoMock) GetMetadata(ctx context.Context, account string) (domain.SyncMetadata, error) {
	if mock.GetMetadataFunc == nil {
		panic("syncRepoMock.GetMetadataFunc: method is nil but syncRepo.GetMetadata was just called")
	}
	return mock.GetMetadataFunc(ctx, account)
}

func (mock *syncRepoMock) PutMetadata(ctx context.Context, account string, m domain.SyncMetadata) error {
	if mock.PutMetadataFunc == nil {
		panic("syncRepoMock.PutMetadataFunc: method is nil but syncRepo.PutMetadata was just called")
	}
	mock.lock.Lock()
	mock.calls.PutMetadata = append(mock.calls.PutMetadata, struct {
		Account string
		M       domain.SyncMetadata
	}{account, m})
	mock.lock.Unlock()
	return mock.PutMetadataFunc(ctx, account, m)
}

func (mock *syncRepoMock) PutMetadataCalls() []struct {
	Account string
	M       domain.SyncMetadata
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.PutMetadata
}

func (mock *syncRepoMock) DeleteAccount(ctx context.Context, account string) error {
	if mock.DeleteAccountFunc == nil {
		panic("syncRepoMock.DeleteAccountFunc: method is nil but syncRepo.DeleteAccount was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteAccount = append(mock.calls.DeleteAccount, struct{ Account string }{account})
	mock.lock.Unlock()
	return mock.DeleteAccountFunc(ctx, account)
}

func (mock *syncRepoMock) DeleteAccountCalls() []struct{ Account string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteAccount
}

var _ txManager = &txManagerMock{}

// txManagerMock runs callbacks inline and counts how each kind was used.
type txManagerMock struct {
	mu        sync.Mutex
	writes    int
	snapshots int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.writes++
	m.mu.Unlock()
	return fn(ctx)
}

func (m *txManagerMock) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.snapshots++
	m.mu.Unlock()
	return fn(ctx)
}
