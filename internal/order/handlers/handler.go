package handlers

import (
	"restaurant-orders/internal/common/logger"
	"restaurant-orders/internal/order/service"
)

type Handler struct {
	service service.OrderServiceInterface
	lg      *logger.Logger
}

func New(svc service.OrderServiceInterface, lg *logger.Logger) *Handler {
	return &Handler{service: svc, lg: lg}
}
