package memory

import (
	"sync"

	"github.com/iwtcode/robotConfigurator/internal/domain/entities"
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
)

// IdentityRepository хранит сессию в памяти процесса
type IdentityRepository struct {
	mu       sync.Mutex
	identity *entities.StoredIdentity
}

func NewIdentityRepository() interfaces.IdentityRepository {
	return &IdentityRepository{}
}

func (r *IdentityRepository) Load() (*entities.StoredIdentity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.identity == nil {
		return nil, nil
	}
	copied := *r.identity
	return &copied, nil
}

func (r *IdentityRepository) Save(identity *entities.StoredIdentity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *identity
	copied.Key = entities.IdentityKey
	r.identity = &copied
	return nil
}

func (r *IdentityRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identity = nil
	return nil
}
