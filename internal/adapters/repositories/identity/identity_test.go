package identity

import (
	"path/filepath"
	"testing"

	"github.com/iwtcode/robotConfigurator/internal/adapters/repositories/sqlite"
	"github.com/iwtcode/robotConfigurator/internal/domain/entities"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *IdentityRepositoryImpl {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "data", "session.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.StoredIdentity{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return NewIdentityRepository(db).(*IdentityRepositoryImpl)
}

func TestLoadEmpty(t *testing.T) {
	repo := newTestRepo(t)

	stored, err := repo.Load()
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestSaveReplacesPrevious(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(&entities.StoredIdentity{Token: "a", Username: "ivan"}))
	require.NoError(t, repo.Save(&entities.StoredIdentity{Token: "b", Username: "olga", IsAdmin: true}))

	stored, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, "b", stored.Token)
	require.Equal(t, "olga", stored.Username)
	require.True(t, stored.IsAdmin)

	var count int64
	require.NoError(t, repo.db.Model(&entities.StoredIdentity{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestClear(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Save(&entities.StoredIdentity{Token: "a", Username: "ivan"}))

	require.NoError(t, repo.Clear())
	stored, err := repo.Load()
	require.NoError(t, err)
	require.Nil(t, stored)

	require.NoError(t, repo.Clear())
}
