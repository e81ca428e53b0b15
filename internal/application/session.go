package app

import (
	"context"

	"roadcheck/internal/domain/entity"
	"roadcheck/internal/domain/port"
)

// SessionService управляет сеансами инспекции: состоянием диалога и
// загруженными пользователем треком и эталонной разметкой.
type SessionService struct {
	repo port.SessionRepository
}

func NewSessionService(repo port.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) Get(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *SessionService) SetState(ctx context.Context, userID, chatID int64, state entity.SessionState) (*entity.Session, error) {
	session, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	session.SetState(state)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *SessionService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

func (s *SessionService) Cancel(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// AttachTrack сохраняет точки GPX-трека в сеансе пользователя.
func (s *SessionService) AttachTrack(ctx context.Context, userID, chatID int64, points []entity.TrackPoint) (*entity.Session, error) {
	session, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	session.AttachTrack(points)
	session.SetState(entity.StateMainMenu)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// AttachReferences сохраняет эталонную разметку в сеансе пользователя.
func (s *SessionService) AttachReferences(ctx context.Context, userID, chatID int64, refs []entity.ReferenceAnnotation) (*entity.Session, error) {
	session, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	session.AttachReferences(refs)
	session.SetState(entity.StateMainMenu)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
