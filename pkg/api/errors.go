package api

// ErrorResponse представляет ответ backend с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health endpoint backend
type HealthResponse struct {
	Status string `json:"status"` // "ok" если backend доступен
}
