package service

import "greengreen/pkg/buyer"

type Service interface {
	Create(uid string, in *buyer.Buyer) error
	List(state, crop string) ([]buyer.Buyer, error)
}
