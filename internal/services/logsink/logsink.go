package logsink

import (
	"sync"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
)

const subscriberBuffer = 64

// Sink - журнал сообщений для пользователя. Записи только добавляются.
type Sink struct {
	mu          sync.RWMutex
	entries     []models.LogEntry
	subscribers map[int]chan models.LogEntry
	nextID      int
	logger      *logging.Logger
	now         func() time.Time
}

// New создает пустой журнал, дублирующий записи в логгер приложения.
func New(logger *logging.Logger) *Sink {
	return &Sink{
		subscribers: make(map[int]chan models.LogEntry),
		logger:      logger.WithPrefix("LOG"),
		now:         time.Now,
	}
}

// Append добавляет запись и рассылает ее подписчикам.
func (s *Sink) Append(message string, kind models.LogKind) models.LogEntry {
	s.mu.Lock()
	entry := models.LogEntry{
		Message:   message,
		Kind:      kind,
		Timestamp: s.now(),
	}
	s.entries = append(s.entries, entry)
	for _, ch := range s.subscribers {
		select {
		case ch <- entry:
		default:
			// медленный подписчик пропускает запись, журнал остается полным
		}
	}
	s.mu.Unlock()

	if kind == models.LogError {
		s.logger.Error(message)
	} else {
		s.logger.Info(message, "kind", kind)
	}
	return entry
}

func (s *Sink) Info(message string) models.LogEntry    { return s.Append(message, models.LogInfo) }
func (s *Sink) Success(message string) models.LogEntry { return s.Append(message, models.LogSuccess) }
func (s *Sink) Error(message string) models.LogEntry   { return s.Append(message, models.LogError) }

// Entries возвращает копию всех записей.
func (s *Sink) Entries() []models.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.LogEntry(nil), s.entries...)
}

// Clear удаляет все записи.
func (s *Sink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Subscribe возвращает канал новых записей и функцию отписки.
func (s *Sink) Subscribe() (<-chan models.LogEntry, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscribeLocked()
}

// SubscribeWithBacklog возвращает накопленные записи и подписку на новые.
// Каждая запись попадает ровно в одно из двух.
func (s *Sink) SubscribeWithBacklog() ([]models.LogEntry, <-chan models.LogEntry, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	backlog := append([]models.LogEntry(nil), s.entries...)
	ch, cancel := s.subscribeLocked()
	return backlog, ch, cancel
}

func (s *Sink) subscribeLocked() (<-chan models.LogEntry, func()) {
	id := s.nextID
	s.nextID++
	ch := make(chan models.LogEntry, subscriberBuffer)
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			close(ch)
		})
	}
	return ch, cancel
}
