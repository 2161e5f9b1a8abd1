// handlers — REST-обработчики showcase-service поверх сервисного слоя.
// Каждый хендлер только парсит вход, зовёт сервис и сериализует ответ;
// вся бизнес-логика живёт в internal/service.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-site-showcase/internal/service"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// errInvalidArgument — вспомогалка: локальная ошибка парсинга запроса.
func errInvalidArgument() error {
	return service.ErrInvalidArgument
}
