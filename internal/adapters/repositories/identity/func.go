package identity

import (
	"errors"

	"github.com/iwtcode/robotConfigurator/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Load возвращает сохраненную сессию или nil, если ее нет
func (r *IdentityRepositoryImpl) Load() (*entities.StoredIdentity, error) {
	var identity entities.StoredIdentity
	err := r.db.Where("key = ?", entities.IdentityKey).First(&identity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// Save сохраняет сессию, заменяя предыдущую
func (r *IdentityRepositoryImpl) Save(identity *entities.StoredIdentity) error {
	identity.Key = entities.IdentityKey
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "username", "is_admin", "updated_at"}),
	}).Create(identity).Error
}

func (r *IdentityRepositoryImpl) Clear() error {
	return r.db.Where("key = ?", entities.IdentityKey).Delete(&entities.StoredIdentity{}).Error
}
