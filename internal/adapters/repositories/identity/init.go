package identity

import (
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"gorm.io/gorm"
)

type IdentityRepositoryImpl struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) interfaces.IdentityRepository {
	return &IdentityRepositoryImpl{db: db}
}
