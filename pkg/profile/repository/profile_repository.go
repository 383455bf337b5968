package repository

import "greengreen/entities"

type ProfileRepository interface {
	// Upsert inserts or replaces the profile keyed by its user id.
	Upsert(p *entities.UserProfile) error
	FindByUser(uid string) (*entities.UserProfile, error)
}
