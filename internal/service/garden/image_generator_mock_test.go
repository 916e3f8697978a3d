package garden

import (
	"context"
	"sync"

	"github.com/heartmarshall/florarium-backend/internal/provider"
)

var _ imageGenerator = &imageGeneratorMock{}

type imageGeneratorMock struct {
	GenerateImageFunc func(ctx context.Context, req provider.ImageRequest) (provider.ImageResult, error)

	calls struct {
		GenerateImage []struct {
			Ctx context.Context
			Req provider.ImageRequest
		}
	}
	lockGenerateImage sync.RWMutex
}

func (mock *imageGeneratorMock) GenerateImage(ctx context.Context, req provider.ImageRequest) (provider.ImageResult, error) {
	if mock.GenerateImageFunc == nil {
		panic("imageGeneratorMock.GenerateImageFunc: method is nil but imageGenerator.GenerateImage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req provider.ImageRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockGenerateImage.Lock()
	mock.calls.GenerateImage = append(mock.calls.GenerateImage, callInfo)
	mock.lockGenerateImage.Unlock()
	return mock.GenerateImageFunc(ctx, req)
}

func (mock *imageGeneratorMock) GenerateImageCalls() []struct {
	Ctx context.Context
	Req provider.ImageRequest
} {
	mock.lockGenerateImage.RLock()
	defer mock.lockGenerateImage.RUnlock()
	return mock.calls.GenerateImage
}
