package container

import (
	app "roadcheck/internal/application"
	"roadcheck/internal/domain/port"
)

type Container struct {
	SessionService    *app.SessionService
	InspectionService *app.InspectionService
}

func New(sessionRepo port.SessionRepository, detector port.DefectDetector, highlighter port.DefectHighlighter, iouThreshold float64) *Container {
	sessionService := app.NewSessionService(sessionRepo)
	correlator := app.NewCorrelator(iouThreshold)
	inspectionService := app.NewInspectionService(sessionService, detector, highlighter, correlator)

	return &Container{
		SessionService:    sessionService,
		InspectionService: inspectionService,
	}
}
