package persistence

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newFiles(t *testing.T) *Files {
	t.Helper()
	return NewFiles(&config.AppConfig{Files: config.FilesConfig{ExportDir: t.TempDir()}}, logging.Nop())
}

func TestNormalizeFilename(t *testing.T) {
	cases := map[string]string{
		"":            DefaultFilename,
		"   ":         DefaultFilename,
		"plan":        "plan.txt",
		" plan.txt ":  "plan.txt",
		"plan.yaml":   "plan.yaml.txt",
		"../etc/plan": "plan.txt",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeFilename(in), in)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	files := newFiles(t)

	cfg := models.DefaultConfiguration()
	cfg.RobotType = models.RobotCylindrical
	cfg.MovementType = models.MovementContour
	cfg.CylindricalParams.Length2 = models.Num(0.3)
	cfg.RegulatorParams.Kp = [4]models.Number{models.Num(1), models.Num(2.5), {}, models.Num(-1)}
	cfg.Cyclegram.T[0] = models.Num(0)
	cfg.Trajectory.Type = models.TrajectoryCircle
	cfg.Trajectory.Circle = models.CircleParams{X: models.Num(0.1), Y: models.Num(0.2), Radius: models.Num(0.05)}
	cfg.GraphSettings.ShowSpline = true

	path, err := files.Export(cfg, "plan")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(files.ExportDir(), "plan.txt"), path)

	imported, err := files.ImportFile(path, models.DefaultConfiguration())
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, imported); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestImportKeepsGroupsMissingFromFile(t *testing.T) {
	files := newFiles(t)
	base := models.DefaultConfiguration()
	base.MotorParams.J = [2]models.Number{models.Num(0.01), models.Num(0.02)}

	cfg, err := files.Import(strings.NewReader("robotType: scara\nscaraParams:\n  length1: 0.5\n"), base)
	require.NoError(t, err)
	require.Equal(t, models.RobotScara, cfg.RobotType)
	require.Equal(t, models.Num(0.5), cfg.ScaraParams.Length1)
	require.Equal(t, base.MotorParams, cfg.MotorParams)
}

func TestImportRejectsMalformed(t *testing.T) {
	files := newFiles(t)
	base := models.DefaultConfiguration()

	for _, body := range []string{"", "robotType: [unterminated", "robotType: delta", "- 1\n- 2\n"} {
		cfg, err := files.Import(strings.NewReader(body), base)
		require.ErrorIs(t, err, apperrors.ErrValidation, body)
		require.Equal(t, base, cfg)
	}
}

func TestRemoteFiles(t *testing.T) {
	_, client := newFakeBackend(t)
	files := newFiles(t)
	rf := NewRemoteFiles(client, files, logging.Nop())
	ctx := context.Background()

	base := models.DefaultConfiguration()
	base.ScaraParams.Mass2 = models.Num(3)
	cfg, name, err := rf.Import(ctx, "robot.txt", strings.NewReader("robot_type = coler"), base)
	require.NoError(t, err)
	require.Equal(t, "robot.txt", name)
	require.Equal(t, models.RobotColer, cfg.RobotType)
	require.Equal(t, models.Num(0.4), cfg.ColerParams.Length1)
	require.Equal(t, models.Num(3), cfg.ScaraParams.Mass2)

	path, err := rf.Export(ctx, cfg, "")
	require.NoError(t, err)
	require.Equal(t, DefaultFilename, filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "robot_type = scara\n", string(data))
}
