package service

import (
	"github.com/MKhiriev/go-supervisor-dump/internal/logger"
	"github.com/MKhiriev/go-supervisor-dump/models"
)

type Services struct {
	ExportService ExportService
}

func NewServices(global models.GlobalConfig, logger *logger.Logger) *Services {
	return &Services{
		ExportService: NewExportService(global, logger),
	}
}
