package service

import "greengreen/entities"

type AuthService interface {
	// Signup creates an account and returns it with a session token.
	Signup(email, password string) (*entities.User, string, error)
	Login(email, password string) (*entities.User, string, error)
	// ParseToken returns the user id carried by a valid session token.
	ParseToken(token string) (string, error)
}
