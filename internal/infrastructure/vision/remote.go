package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"roadcheck/internal/domain/entity"
	"roadcheck/internal/domain/port"
)

// RemoteDetector — клиент внешней модели поиска дефектов. Изображение
// отправляется как есть, ответ — JSON со списком детекций в порядке выдачи
// модели; порядок сохраняется, он значим для сопоставления с эталоном.
type RemoteDetector struct {
	url    string
	client *http.Client
}

// Ответ модели: рамки нормированы к [0,1], уверенность опциональна.
type detectResponse struct {
	Detections []struct {
		Type       string  `json:"type"`
		Confidence float64 `json:"confidence"`
		Box        struct {
			XMin float64 `json:"x_min"`
			YMin float64 `json:"y_min"`
			XMax float64 `json:"x_max"`
			YMax float64 `json:"y_max"`
		} `json:"box"`
	} `json:"detections"`
}

// NewRemoteDetector создаёт клиент модели по адресу url.
func NewRemoteDetector(url string) *RemoteDetector {
	return &RemoteDetector{
		url:    url,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Detect отправляет изображение модели и возвращает типизированные детекции.
func (d *RemoteDetector) Detect(ctx context.Context, imageData []byte) (*entity.InspectionResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("build detect request: %w", err)
	}
	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call detector: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector returned status %d", resp.StatusCode)
	}

	var body detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode detector response: %w", err)
	}

	detections := make([]entity.Detection, 0, len(body.Detections))
	for _, det := range body.Detections {
		if det.Type == "" {
			continue
		}
		conf := det.Confidence
		if conf < 0 || conf > 1 {
			conf = 0
		}
		detections = append(detections, entity.Detection{
			Type:       det.Type,
			Confidence: conf,
			Box: entity.BoundingBox{
				XMin: det.Box.XMin,
				YMin: det.Box.YMin,
				XMax: det.Box.XMax,
				YMax: det.Box.YMax,
			},
		})
	}

	return &entity.InspectionResult{
		Detections: detections,
		HasDefects: len(detections) > 0,
	}, nil
}

// Проверка реализации интерфейса
var _ port.DefectDetector = (*RemoteDetector)(nil)
