package postgres

import (
	"testing"

	"github.com/iwtcode/robotConfigurator/internal/config"

	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	db := config.DatabaseConfig{Host: "db", Port: "5433", Username: "robot", Password: "secret", DBName: "configurator"}

	require.Equal(t, "host=db user=robot password=secret dbname=configurator port=5433 sslmode=disable", DSN(db, db.DBName))
	require.Contains(t, DSN(db, maintenanceDB), "dbname=postgres ")
}
