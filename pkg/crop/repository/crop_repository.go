package repository

import "greengreen/entities"

type CropRepository interface {
	// List returns crops ordered by name with pricing and planting windows
	// loaded. An empty category lists everything.
	List(category string) ([]entities.Crop, error)
	// Get loads a crop with pricing, windows and seed sources.
	Get(id uint) (*entities.Crop, error)
	FindByName(name string) (*entities.Crop, error)
	// Create inserts the crop and its associations.
	Create(c *entities.Crop) error
}
