package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "roadcheck/internal/application"
	"roadcheck/internal/container"
	"roadcheck/internal/domain/entity"
	"roadcheck/internal/infrastructure/parser"
)

const (
	msgStart = `👋 Привет! Я бот для инспекции дорожного покрытия.

📸 Отправьте мне фото дороги, и я найду дефекты: трещины, выбоины и другие.

📋 Команды:
/check — начать проверку
/track — загрузить GPX-трек поездки (для геопривязки фото)
/truth — загрузить эталонную разметку PASCAL VOC (для оценки точности)
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ /check и отправьте фото дороги
2️⃣ Бот отправит фото внешней модели и вернёт список дефектов

💡 Дополнительно:
• /track + GPX-файл — к каждому отчёту добавится координата съёмки,
  восстановленная по треку на момент кадра
• /truth + XML-файл разметки — к отчёту добавятся метрики точности
  модели (precision / recall / F1) против эталона

📋 Команды:
/check — начать проверку
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото дороги для поиска дефектов."
	msgAwaitingTrack   = "🗺 Отправьте GPX-файл с треком поездки."
	msgAwaitingTruth   = "📑 Отправьте XML-файл эталонной разметки (PASCAL VOC)."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото дороги или команду /help."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgNoDefects       = "✅ Дефекты не обнаружены."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
	msgTrackError      = "⚠️ Не удалось прочитать GPX-файл. Проверьте формат и попробуйте ещё раз."
	msgTrackEmpty      = "⚠️ В GPX-файле нет пригодных точек (нужны координаты и время)."
	msgTruthError      = "⚠️ Не удалось прочитать файл разметки. Проверьте формат и попробуйте ещё раз."
)

// Bot представляет Telegram-бота
type Bot struct {
	api        *tgbotapi.BotAPI
	sessions   *app.SessionService
	inspection *app.InspectionService
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:        api,
		sessions:   services.SessionService,
		inspection: services.InspectionService,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	session, err := b.sessions.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting session: %v", err)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if msg.Photo != nil && len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	if msg.Document != nil {
		b.handleDocument(ctx, msg, session)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		b.sessions.BeginCheck(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "track":
		b.sessions.SetState(ctx, msg.From.ID, msg.Chat.ID, entity.StateAwaitingTrack)
		b.sendMessage(msg.Chat.ID, msgAwaitingTrack)

	case "truth":
		b.sessions.SetState(ctx, msg.From.ID, msg.Chat.ID, entity.StateAwaitingTruth)
		b.sendMessage(msg.Chat.ID, msgAwaitingTruth)

	case "cancel":
		b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleDocument обрабатывает загрузку GPX-трека или файла разметки
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message, session *entity.Session) {
	data, err := b.downloadFile(msg.Document.FileID)
	if err != nil {
		log.Printf("Error downloading document: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	switch session.State {
	case entity.StateAwaitingTrack:
		points, err := parser.ParseGPX(bytes.NewReader(data))
		if err != nil {
			log.Printf("Error parsing gpx: %v", err)
			b.sendMessage(msg.Chat.ID, msgTrackError)
			return
		}
		if len(points) == 0 {
			b.sendMessage(msg.Chat.ID, msgTrackEmpty)
			return
		}
		if _, err := b.sessions.AttachTrack(ctx, msg.From.ID, msg.Chat.ID, points); err != nil {
			log.Printf("Error saving track: %v", err)
			return
		}
		b.sendMessage(msg.Chat.ID, fmt.Sprintf("🗺 Трек загружен: %d точек. Отправьте /check и фото.", len(points)))

	case entity.StateAwaitingTruth:
		refs, err := parser.ParseVOC(bytes.NewReader(data))
		if err != nil {
			log.Printf("Error parsing voc: %v", err)
			b.sendMessage(msg.Chat.ID, msgTruthError)
			return
		}
		if _, err := b.sessions.AttachReferences(ctx, msg.From.ID, msg.Chat.ID, refs); err != nil {
			log.Printf("Error saving references: %v", err)
			return
		}
		b.sendMessage(msg.Chat.ID, fmt.Sprintf("📑 Разметка загружена: %d эталонных рамок. Отправьте /check и фото.", len(refs)))

	default:
		b.sendMessage(msg.Chat.ID, "📎 Сначала выберите, что загружаете: /track или /truth.")
	}
}

// handlePhoto обрабатывает входящее фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	b.sessions.SetState(ctx, msg.From.ID, msg.Chat.ID, entity.StateProcessing)
	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		return
	}

	// Момент съёмки берём из метки сообщения: точнее данных у Telegram нет.
	takenAt := time.Unix(int64(msg.Date), 0)

	report, err := b.inspection.ProcessPhoto(ctx, msg.From.ID, msg.Chat.ID, imageData, takenAt)
	if err != nil {
		log.Printf("Error processing photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		return
	}

	b.sendMessage(msg.Chat.ID, renderReport(report))

	if report.Highlighted != nil {
		file := tgbotapi.FileBytes{Name: "defects.jpg", Bytes: report.Highlighted}
		if _, err := b.api.Send(tgbotapi.NewPhoto(msg.Chat.ID, file)); err != nil {
			log.Printf("Error sending highlighted photo: %v", err)
		}
	}

	b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID)
}

// renderReport собирает текст отчёта по фотографии
func renderReport(report *entity.Report) string {
	var sb strings.Builder

	if !report.Result.HasDefects {
		sb.WriteString(msgNoDefects)
	} else {
		fmt.Fprintf(&sb, "🔍 Найдено дефектов: %d\n", len(report.Result.Detections))
		for i, det := range report.Result.Detections {
			fmt.Fprintf(&sb, "%d. %s", i+1, det.NormalizedType())
			if det.Confidence > 0 {
				fmt.Fprintf(&sb, " (уверенность %.0f%%)", det.Confidence*100)
			}
			sb.WriteString("\n")
		}
	}

	if report.Location != nil {
		fmt.Fprintf(&sb, "\n📍 Координата съёмки: %.6f, %.6f", report.Location.Latitude, report.Location.Longitude)
	}

	if report.Metrics != nil {
		m := report.Metrics
		fmt.Fprintf(&sb, "\n\n📊 Точность против эталона (IoU-совпадения: %d, средний IoU %.2f):\n", m.TruePositives, m.AverageIoU)
		fmt.Fprintf(&sb, "precision %.2f / recall %.2f / F1 %.2f\n", m.Precision, m.Recall, m.F1Score)

		names := make([]string, 0, len(m.PerClass))
		for name := range m.PerClass {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			class := m.PerClass[name]
			fmt.Fprintf(&sb, "• %s: tp=%d fp=%d fn=%d (эталон: %d)\n",
				name, class.TruePositives, class.FalsePositives, class.FalseNegatives, class.TotalGroundTruth)
		}
	}

	return sb.String()
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
