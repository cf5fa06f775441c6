package ports

import "go.trai.ch/glance/internal/core/domain"

// DatasetLoader reads tabular data from local storage.
//
//go:generate mockgen -source=dataset_loader.go -destination=mocks/mock_dataset_loader.go -package=mocks
type DatasetLoader interface {
	// Load reads the file at path. On failure it returns a *domain.LoadError and no dataset.
	Load(path string) (*domain.Dataset, error)
}
