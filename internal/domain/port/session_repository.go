package port

import (
	"context"

	"roadcheck/internal/domain/entity"
)

// SessionRepository — интерфейс хранилища сеансов инспекции
type SessionRepository interface {
	// Get возвращает сеанс по ID пользователя, создаёт новый если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.Session, error)

	// Save сохраняет сеанс
	Save(ctx context.Context, session *entity.Session) error
}
