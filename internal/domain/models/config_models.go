package models

import (
	"encoding/json"

	configmodels "github.com/iwtcode/robotConfigurator/models"
)

// CreateConfigRequest - тело запроса на сохранение новой конфигурации
type CreateConfigRequest struct {
	Name       string                          `json:"name"`
	ConfigData configmodels.RobotConfiguration `json:"config_data"`
}

// UpdateConfigRequest - частичное обновление, отсутствующие поля не передаются
type UpdateConfigRequest struct {
	Name       *string                          `json:"name,omitempty"`
	ConfigData *configmodels.RobotConfiguration `json:"config_data,omitempty"`
}

// UploadResponse - ответ на загрузку файла конфигурации.
// State содержит только группы, найденные в файле.
type UploadResponse struct {
	Success  bool            `json:"success"`
	Filename string          `json:"filename"`
	State    json.RawMessage `json:"state"`
}
