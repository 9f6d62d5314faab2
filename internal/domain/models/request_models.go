package models

// TrajectoryTypeRequest - выбор вида траектории
type TrajectoryTypeRequest struct {
	Type string `json:"type" binding:"required"`
}

// SaveConfigRequest - сохранение конфигурации на сервере
type SaveConfigRequest struct {
	Name  string `json:"name"`
	AsNew bool   `json:"as_new"`
}

// ChangePasswordForm - форма смены пароля
type ChangePasswordForm struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// FileRequest - имя файла для экспорта; пустое означает текущее
type FileRequest struct {
	Filename string `json:"filename"`
}
