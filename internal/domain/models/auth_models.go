package models

// Credentials - данные для входа
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest - данные для регистрации
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// TokenResponse - ответ на вход и регистрацию
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	IsAdmin     bool   `json:"is_admin"`
}

// Identity - ответ проверки токена
type Identity struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// ChangePasswordRequest - тело запроса смены пароля
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// RegisterForm - данные формы регистрации до проверки
type RegisterForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Confirm  string `json:"confirm_password"`
	Email    string `json:"email,omitempty"`
}
