package handler

import (
	"go.uber.org/zap"

	"clinic-calendar-api/internal/calendar"
)

type Handler struct {
	svc *calendar.Service
	log *zap.Logger
}

func New(svc *calendar.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}
