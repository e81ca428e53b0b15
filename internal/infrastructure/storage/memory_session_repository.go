package storage

import (
	"context"
	"sync"

	"roadcheck/internal/domain/entity"
	"roadcheck/internal/domain/port"
)

// MemorySessionRepository — in-memory хранилище сеансов инспекции
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]*entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[int64]*entity.Session),
	}
}

// Get возвращает сеанс по ID пользователя, создаёт новый если не найден
func (r *MemorySessionRepository) Get(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[userID]
	r.mu.RUnlock()

	if exists {
		return session, nil
	}

	newSession := entity.NewSession(userID, chatID)

	r.mu.Lock()
	r.sessions[userID] = newSession
	r.mu.Unlock()

	return newSession, nil
}

// Save сохраняет сеанс
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	r.sessions[session.UserID] = session
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
