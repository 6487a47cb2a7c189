package models

import "time"

// Location представляет точку, в которой был составлен отчёт.
type Location struct {
	Lat      float64 `json:"lat"`      // Lat широта в градусах
	Lng      float64 `json:"lng"`      // Lng долгота в градусах
	Accuracy float64 `json:"accuracy"` // Accuracy радиус погрешности в метрах (0 = неизвестно)
}

// Classification содержит метаданные классификации отчёта
// (тип происшествия, серьёзность, уверенность автоматического классификатора).
type Classification struct {
	Category   string   `json:"category"`   // Category тип происшествия: "fire", "flood", "rubble", "medical"
	Tags       []string `json:"tags"`       // Tags свободные теги оператора
	Severity   int      `json:"severity"`   // Severity серьёзность 0-10
	Confidence float64  `json:"confidence"` // Confidence уверенность классификатора 0-1
}

// RelayPayload представляет отчёт о происшествии, передаваемый
// между устройствами без сети через последовательность визуальных кодов.
type RelayPayload struct {
	Timestamp      time.Time      `json:"timestamp"`      // Timestamp время составления отчёта
	Classification Classification `json:"classification"` // Classification метаданные классификации
	ID             string         `json:"id"`             // ID уникальный идентификатор отчёта (UUID)
	Source         string         `json:"source"`         // Source идентификатор устройства или оператора
	Text           string         `json:"text"`           // Text текст отчёта
	Image          []byte         `json:"image"`          // Image опциональное изображение (JPEG после сжатия)
	Location       Location       `json:"location"`       // Location координаты отчёта
	ImageDropped   bool           `json:"image_dropped"`  // ImageDropped изображение было, но не удалось его сжать
}

// HasImage reports whether the payload carries image bytes.
func (p *RelayPayload) HasImage() bool {
	return len(p.Image) > 0
}

// RelayChunk is one self-describing fragment of a compressed payload.
type RelayChunk struct {
	Data  string
	Index int
	Total int
}
