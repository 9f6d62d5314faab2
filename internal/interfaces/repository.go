package interfaces

import (
	"github.com/iwtcode/robotConfigurator/internal/domain/entities"
)

// IdentityRepository определяет контракт хранения сохраненной сессии пользователя
type IdentityRepository interface {
	Load() (*entities.StoredIdentity, error)
	Save(identity *entities.StoredIdentity) error
	Clear() error
}
