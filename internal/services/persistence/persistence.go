// Package persistence сохраняет и загружает конфигурации робота через
// серверное хранилище, файлы и панель администратора.
package persistence

import (
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

const msgAuthRequired = "Требуется авторизация"

// requireToken возвращает токен сессии или ErrAuthRequired без обращения к сети.
func requireToken(tokens interfaces.TokenSource) (string, error) {
	token, ok := tokens.Token()
	if !ok || token == "" {
		return "", apperrors.NewAppError(0, msgAuthRequired, apperrors.ErrAuthRequired)
	}
	return token, nil
}
