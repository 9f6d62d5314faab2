package models

import configmodels "github.com/iwtcode/robotConfigurator/models"

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"404"`
		Message string `json:"message" example:"Конфигурация не найдена"`
	} `json:"error"`
}

// MessageResponse представляет стандартный успешный ответ с сообщением.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Файл успешно сохранён"`
}

// SessionResponse описывает текущую сессию без токена.
type SessionResponse struct {
	Status   string                    `json:"status" example:"ok"`
	State    configmodels.SessionState `json:"state"`
	Username string                    `json:"username,omitempty"`
	IsAdmin  bool                      `json:"is_admin"`
}

// CurrentRecordResponse описывает серверную запись, с которой связана конфигурация.
type CurrentRecordResponse struct {
	Status string                  `json:"status" example:"ok"`
	Record *configmodels.RecordRef `json:"record"`
	Label  string                  `json:"label"`
}

// FileResponse возвращается после записи файла.
type FileResponse struct {
	Status   string `json:"status" example:"ok"`
	Path     string `json:"path"`
	Filename string `json:"filename"`
}
