package handlers

import "restaurant-orders/internal/catalog/service"

type Handler struct {
	service service.CatalogServiceInterface
}

func New(svc service.CatalogServiceInterface) *Handler {
	return &Handler{service: svc}
}
