package app

import (
	"context"
	"errors"
	"time"

	"roadcheck/internal/domain/entity"
	"roadcheck/internal/domain/port"
)

// InspectionService собирает отчёт по одной фотографии: вызывает внешнюю
// модель, сверяет её выдачу с эталоном и восстанавливает координату съёмки
// по треку из сеанса.
type InspectionService struct {
	sessions    *SessionService
	detector    port.DefectDetector
	highlighter port.DefectHighlighter
	correlator  *Correlator
	locator     *TrackLocator
}

// NewInspectionService создаёт сервис инспекции.
func NewInspectionService(sessions *SessionService, detector port.DefectDetector, highlighter port.DefectHighlighter, correlator *Correlator) *InspectionService {
	return &InspectionService{
		sessions:    sessions,
		detector:    detector,
		highlighter: highlighter,
		correlator:  correlator,
		locator:     NewTrackLocator(),
	}
}

// ProcessPhoto прогоняет фото через модель и собирает отчёт. Метрики точности
// считаются только при загруженной разметке, координата — только при
// загруженном треке; отсутствие того и другого не ошибка.
func (s *InspectionService) ProcessPhoto(ctx context.Context, userID, chatID int64, photo []byte, takenAt time.Time) (*entity.Report, error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}

	session, err := s.sessions.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	result, err := s.detector.Detect(ctx, photo)
	if err != nil {
		return nil, err
	}

	report := &entity.Report{Result: result}

	if session.References != nil {
		metrics := s.correlator.Compare(result.Detections, session.References)
		report.Metrics = &metrics
	}

	if len(session.Track) > 0 {
		loc, err := s.locator.Resolve(session.Track, takenAt)
		if err != nil {
			// Трек без пригодных точек: отчёт остаётся без координаты.
			if !errors.Is(err, ErrNoTrackData) {
				return nil, err
			}
		} else {
			report.Location = &loc
		}
	}

	if result.HasDefects && s.highlighter != nil {
		report.Highlighted, _ = s.highlighter.HighlightDefects(photo, result)
	}

	return report, nil
}
