package persistence

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/adapters/api"
	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
)

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

// fakeBackend хранит конфигурации в памяти и проверяет токен "good".
type fakeBackend struct {
	mu       sync.Mutex
	records  map[int64]models.PersistedConfigRecord
	nextID   int64
	requests int
	updates  []map[string]json.RawMessage
}

func newFakeBackend(t *testing.T) (*fakeBackend, *api.Client) {
	t.Helper()
	b := &fakeBackend{records: map[int64]models.PersistedConfigRecord{}, nextID: 1}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/configs", b.auth(b.list))
	mux.HandleFunc("POST /api/configs", b.auth(b.create))
	mux.HandleFunc("GET /api/configs/{id}", b.auth(b.get))
	mux.HandleFunc("PUT /api/configs/{id}", b.auth(b.update))
	mux.HandleFunc("DELETE /api/configs/{id}", b.auth(b.remove))
	mux.HandleFunc("GET /api/admin/configs/{id}", b.admin(b.get))
	mux.HandleFunc("POST /api/data/download", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("robot_type = scara\n"))
	})
	mux.HandleFunc("POST /api/data/upload", func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, `{"detail":"no file"}`, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"filename": header.Filename,
			"state":    map[string]interface{}{"robotType": "coler", "colerParams": map[string]interface{}{"length1": 0.4}},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return b, api.NewClient(srv.URL, 5*time.Second, logging.Nop())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests++
		b.mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer good" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Не авторизован"})
			return
		}
		next(w, r)
	}
}

func (b *fakeBackend) admin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer admin" {
			writeJSON(w, http.StatusForbidden, map[string]string{"detail": "Недостаточно прав"})
			return
		}
		next(w, r)
	}
}

func (b *fakeBackend) list(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.ConfigSummary{}
	for _, rec := range b.records {
		out = append(out, models.ConfigSummary{ID: rec.ID, Name: rec.Name, UpdatedAt: rec.UpdatedAt})
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *fakeBackend) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	rec := models.PersistedConfigRecord{ID: b.nextID, Name: req.Name, ConfigData: req.ConfigData, UpdatedAt: time.Now()}
	b.records[rec.ID] = rec
	b.nextID++
	writeJSON(w, http.StatusOK, rec)
}

func (b *fakeBackend) lookup(w http.ResponseWriter, r *http.Request) (models.PersistedConfigRecord, bool) {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	rec, ok := b.records[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Конфигурация не найдена"})
	}
	return rec, ok
}

func (b *fakeBackend) get(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if rec, ok := b.lookup(w, r); ok {
		writeJSON(w, http.StatusOK, rec)
	}
}

func (b *fakeBackend) update(w http.ResponseWriter, r *http.Request) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updates = append(b.updates, raw)
	rec, ok := b.lookup(w, r)
	if !ok {
		return
	}
	if name, ok := raw["name"]; ok {
		_ = json.Unmarshal(name, &rec.Name)
	}
	if data, ok := raw["config_data"]; ok {
		_ = json.Unmarshal(data, &rec.ConfigData)
	}
	rec.UpdatedAt = time.Now()
	b.records[rec.ID] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (b *fakeBackend) remove(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if rec, ok := b.lookup(w, r); ok {
		delete(b.records, rec.ID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	}
}
