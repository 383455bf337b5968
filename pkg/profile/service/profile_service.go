package service

import "greengreen/entities"

type ProfileService interface {
	GetProfile(uid string) (*entities.UserProfile, error)
	// SaveProfile validates p and stores it for uid.
	SaveProfile(uid string, p *entities.UserProfile) (*entities.UserProfile, error)
}
