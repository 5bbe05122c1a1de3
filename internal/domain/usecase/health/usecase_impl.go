package health

import (
	"weather-widget/internal/domain/gateway/storage"
	"weather-widget/internal/domain/model"
)

type healthUseCase struct {
	store storage.KeyValueStore
}

func NewHealthUseCase(store storage.KeyValueStore) UseCase {
	return &healthUseCase{store: store}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	storageHealth := useCase.store.Health()

	overallStatus := model.StatusUp
	if storageHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:  overallStatus,
		Storage: storageHealth,
	}
}
