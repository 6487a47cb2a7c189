package models

import "time"

// QueueStatus represents the replay state of a queued mutation
type QueueStatus string

const (
	QueueStatusPending QueueStatus = "pending" // ещё не воспроизводилась
	QueueStatusFailed  QueueStatus = "failed"  // последняя попытка воспроизведения не удалась
)

// Valid reports whether s is a known status.
func (s QueueStatus) Valid() bool {
	return s == QueueStatusPending || s == QueueStatusFailed
}

// MutationRequest описывает изменяющий запрос к backend, который
// нужно выполнить сейчас или отложить до восстановления связи.
type MutationRequest struct {
	Headers map[string]string `json:"headers,omitempty"` // Headers заголовки запроса
	Method  string            `json:"method"`            // Method HTTP метод: POST, PUT, PATCH, DELETE
	URL     string            `json:"url"`               // URL абсолютный URL или путь относительно backend
	Label   string            `json:"label"`             // Label человекочитаемое описание для UI ("verify task 42")
	Body    []byte            `json:"body,omitempty"`    // Body тело запроса (обычно JSON)
}

// QueueEntry представляет отложенную мутацию в персистентной очереди.
// Порядок ID определяет порядок воспроизведения.
type QueueEntry struct {
	CreatedAt time.Time         `json:"created_at"`           // CreatedAt время постановки в очередь (ISO-8601 в хранилище)
	Headers   map[string]string `json:"headers,omitempty"`    // Headers заголовки исходного запроса
	Method    string            `json:"method"`               // Method HTTP метод
	URL       string            `json:"url"`                  // URL адрес запроса
	Label     string            `json:"label"`                // Label описание для оператора
	Status    QueueStatus       `json:"status"`               // Status pending или failed
	LastError string            `json:"last_error,omitempty"` // LastError текст последней ошибки воспроизведения
	Body      []byte            `json:"body,omitempty"`       // Body тело запроса
	ID        uint64            `json:"id"`                   // ID монотонный идентификатор, назначается хранилищем
	Retries   int               `json:"retries"`              // Retries количество неудачных попыток
}

// NewQueueEntry builds a pending entry from a request. ID is left zero,
// the store assigns it.
func NewQueueEntry(req *MutationRequest, now time.Time) *QueueEntry {
	headers := make(map[string]string, len(req.Headers))
	for k, v := range req.Headers {
		headers[k] = v
	}

	var body []byte
	if len(req.Body) > 0 {
		body = make([]byte, len(req.Body))
		copy(body, req.Body)
	}

	return &QueueEntry{
		Method:    req.Method,
		URL:       req.URL,
		Body:      body,
		Headers:   headers,
		Label:     req.Label,
		CreatedAt: now.UTC(),
		Status:    QueueStatusPending,
	}
}

// Clone создает глубокую копию записи очереди
func (e *QueueEntry) Clone() *QueueEntry {
	c := *e

	if e.Body != nil {
		c.Body = make([]byte, len(e.Body))
		copy(c.Body, e.Body)
	}

	if e.Headers != nil {
		c.Headers = make(map[string]string, len(e.Headers))
		for k, v := range e.Headers {
			c.Headers[k] = v
		}
	}

	return &c
}

// Request returns the mutation this entry replays.
func (e *QueueEntry) Request() *MutationRequest {
	return &MutationRequest{
		Method:  e.Method,
		URL:     e.URL,
		Body:    e.Body,
		Headers: e.Headers,
		Label:   e.Label,
	}
}
