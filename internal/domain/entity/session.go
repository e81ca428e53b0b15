package entity

// SessionState — состояние диалога с инспектором.
type SessionState string

const (
	StateMainMenu      SessionState = "main_menu"      // в главном меню
	StateAwaitingPhoto SessionState = "awaiting_photo" // ожидание фото дороги
	StateAwaitingTrack SessionState = "awaiting_track" // ожидание GPX-файла
	StateAwaitingTruth SessionState = "awaiting_truth" // ожидание файла разметки
	StateProcessing    SessionState = "processing"     // обработка изображения
)

// Session — сеанс инспекции одного пользователя: состояние диалога плюс
// загруженные им трек и эталонная разметка.
type Session struct {
	UserID     int64        // Telegram User ID
	ChatID     int64        // Telegram Chat ID
	State      SessionState // текущее состояние диалога
	Track      []TrackPoint // точки GPX-трека; nil, если трек не загружен
	References []ReferenceAnnotation // эталонная разметка; nil, если не загружена
}

// NewSession создаёт сеанс с начальным состоянием.
func NewSession(userID, chatID int64) *Session {
	return &Session{
		UserID: userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние диалога.
func (s *Session) SetState(state SessionState) {
	s.State = state
}

// AttachTrack сохраняет точки трека для последующих фотографий.
func (s *Session) AttachTrack(points []TrackPoint) {
	s.Track = points
}

// AttachReferences сохраняет эталонную разметку для последующих фотографий.
func (s *Session) AttachReferences(refs []ReferenceAnnotation) {
	s.References = refs
}
