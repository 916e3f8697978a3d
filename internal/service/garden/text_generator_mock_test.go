package garden

import (
	"context"
	"sync"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

var _ textGenerator = &textGeneratorMock{}

type textGeneratorMock struct {
	FlowerNameFunc       func(ctx context.Context, descriptor string) (string, error)
	FlowerDetailsFunc    func(ctx context.Context, req provider.DetailsRequest) (domain.FlowerDetails, error)
	NotificationCopyFunc func(ctx context.Context, req provider.CopyRequest) (provider.Copy, error)

	calls struct {
		FlowerName []struct {
			Ctx        context.Context
			Descriptor string
		}
		FlowerDetails []struct {
			Ctx context.Context
			Req provider.DetailsRequest
		}
		NotificationCopy []struct {
			Ctx context.Context
			Req provider.CopyRequest
		}
	}
	lockFlowerName       sync.RWMutex
	lockFlowerDetails    sync.RWMutex
	lockNotificationCopy sync.RWMutex
}

func (mock *textGeneratorMock) FlowerName(ctx context.Context, descriptor string) (string, error) {
	if mock.FlowerNameFunc == nil {
		panic("textGeneratorMock.FlowerNameFunc: method is nil but textGenerator.FlowerName was just called")
	}
	mock.lockFlowerName.Lock()
	mock.calls.FlowerName = append(mock.calls.FlowerName, struct {
		Ctx        context.Context
		Descriptor string
	}{ctx, descriptor})
	mock.lockFlowerName.Unlock()
	return mock.FlowerNameFunc(ctx, descriptor)
}

func (mock *textGeneratorMock) FlowerNameCalls() []struct {
	Ctx        context.Context
	Descriptor string
} {
	mock.lockFlowerName.RLock()
	defer mock.lockFlowerName.RUnlock()
	return mock.calls.FlowerName
}

func (mock *textGeneratorMock) FlowerDetails(ctx context.Context, req provider.DetailsRequest) (domain.FlowerDetails, error) {
	if mock.FlowerDetailsFunc == nil {
		panic("textGeneratorMock.FlowerDetailsFunc: method is nil but textGenerator.FlowerDetails was just called")
	}
	mock.lockFlowerDetails.Lock()
	mock.calls.FlowerDetails = append(mock.calls.FlowerDetails, struct {
		Ctx context.Context
		Req provider.DetailsRequest
	}{ctx, req})
	mock.lockFlowerDetails.Unlock()
	return mock.FlowerDetailsFunc(ctx, req)
}

func (mock *textGeneratorMock) FlowerDetailsCalls() []struct {
	Ctx context.Context
	Req provider.DetailsRequest
} {
	mock.lockFlowerDetails.RLock()
	defer mock.lockFlowerDetails.RUnlock()
	return mock.calls.FlowerDetails
}

func (mock *textGeneratorMock) NotificationCopy(ctx context.Context, req provider.CopyRequest) (provider.Copy, error) {
	if mock.NotificationCopyFunc == nil {
		panic("textGeneratorMock.NotificationCopyFunc: method is nil but textGenerator.NotificationCopy was just called")
	}
	mock.lockNotificationCopy.Lock()
	mock.calls.NotificationCopy = append(mock.calls.NotificationCopy, struct {
		Ctx context.Context
		Req provider.CopyRequest
	}{ctx, req})
	mock.lockNotificationCopy.Unlock()
	return mock.NotificationCopyFunc(ctx, req)
}

func (mock *textGeneratorMock) NotificationCopyCalls() []struct {
	Ctx context.Context
	Req provider.CopyRequest
} {
	mock.lockNotificationCopy.RLock()
	defer mock.lockNotificationCopy.RUnlock()
	return mock.calls.NotificationCopy
}
