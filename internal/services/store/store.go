package store

import (
	"sync"

	"github.com/iwtcode/robotConfigurator/models"
)

// Store владеет деревом конфигурации робота. Снаружи доступны только копии.
type Store struct {
	mu  sync.RWMutex
	cfg models.RobotConfiguration
}

// New создает хранилище с исходной конфигурацией.
func New() *Store {
	return &Store{cfg: models.DefaultConfiguration()}
}

// Get возвращает текущий снимок конфигурации.
func (s *Store) Get() models.RobotConfiguration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Merge применяет патч целиком и возвращает новый снимок.
func (s *Store) Merge(patch models.Patch) models.RobotConfiguration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = patch.Apply(s.cfg)
	return s.cfg
}

// Replace полностью заменяет конфигурацию.
func (s *Store) Replace(cfg models.RobotConfiguration) models.RobotConfiguration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	return s.cfg
}

// RecordPointer хранит ссылку на текущую серверную запись.
type RecordPointer struct {
	mu    sync.RWMutex
	ref   *models.RecordRef
	label string
}

func NewRecordPointer() *RecordPointer {
	return &RecordPointer{}
}

// Current возвращает текущую запись, если она есть.
func (p *RecordPointer) Current() (models.RecordRef, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.ref == nil {
		return models.RecordRef{}, false
	}
	return *p.ref, true
}

// Set связывает конфигурацию с серверной записью.
func (p *RecordPointer) Set(ref models.RecordRef) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ref = &ref
	p.label = ref.Name
}

// Clear разрывает связь с серверной записью.
func (p *RecordPointer) Clear() {
	p.Detach("")
}

// Detach разрывает связь с записью, оставляя подпись для отображения.
func (p *RecordPointer) Detach(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ref = nil
	p.label = label
}

// Label возвращает отображаемое имя текущей конфигурации.
func (p *RecordPointer) Label() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.label
}
