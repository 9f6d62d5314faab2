package editor

import (
	"testing"

	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"1.5":   1.5,
		"1,5":   1.5,
		" -2 ":  -2,
		"0,002": 0.002,
		"1e3":   1000,
	}
	for raw, want := range cases {
		got, err := ParseNumber(raw)
		require.NoError(t, err, raw)
		require.InDelta(t, want, got, 1e-12, raw)
	}

	for _, raw := range []string{"", "   ", "abc", "NaN", "Inf", "-infinity", "1,2,3"} {
		_, err := ParseNumber(raw)
		require.ErrorIs(t, err, apperrors.ErrValidation, raw)
	}
}

func TestBuildPatchCartesianParams(t *testing.T) {
	patch, err := BuildPatch(GroupCartesianParams, Form{
		"mass1": "1", "mass2": "2,5", "mass3": "0", "moment": "0.1",
	})
	require.NoError(t, err)
	require.NotNil(t, patch.CartesianParams)
	require.Equal(t, models.Num(2.5), patch.CartesianParams.Mass2)
	require.Nil(t, patch.ScaraParams)
}

func TestBuildPatchRejectsWholeGroup(t *testing.T) {
	patch, err := BuildPatch(GroupCartesianParams, Form{
		"mass1": "1", "mass2": "x", "mass3": "0", "moment": "0.1",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.True(t, patch.Empty())

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "mass2", vErr.Field)
}

func TestBuildPatchMissingField(t *testing.T) {
	_, err := BuildPatch(GroupLineParams, Form{"x1": "0", "x2": "1", "y1": "0", "y2": "1"})

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "speed", vErr.Field)
}

func TestBuildPatchCyclegram(t *testing.T) {
	form := Form{}
	for _, name := range []string{"t", "q1", "q2", "q3", "q4"} {
		for i := 0; i < models.CyclegramPoints; i++ {
			form[models.SeriesKey(name, i)] = "1"
		}
	}
	form["t[0]"] = "0"

	patch, err := BuildPatch(GroupCyclegram, form)
	require.NoError(t, err)
	require.Equal(t, models.Num(0), patch.Cyclegram.T[0])
	require.Equal(t, models.Num(1), patch.Cyclegram.Q4[8])

	delete(form, "q3[4]")
	_, err = BuildPatch(GroupCyclegram, form)
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBuildPatchEnumsAndGraph(t *testing.T) {
	patch, err := BuildPatch(GroupRobotType, Form{"robotType": "scara"})
	require.NoError(t, err)
	require.Equal(t, models.RobotScara, *patch.RobotType)

	_, err = BuildPatch(GroupRobotType, Form{"robotType": "delta"})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	patch, err = BuildPatch(GroupGraphSettings, Form{"coordType": "current", "showSpline": "true"})
	require.NoError(t, err)
	require.Equal(t, models.PlotCurrent, *patch.GraphSettings.CoordType)
	require.True(t, *patch.GraphSettings.ShowSpline)

	_, err = BuildPatch(Group("unknown"), Form{})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTrajectoryTypePatch(t *testing.T) {
	patch, err := TrajectoryTypePatch("circle")
	require.NoError(t, err)
	require.Equal(t, models.TrajectoryCircle, *patch.Trajectory.Type)

	_, err = TrajectoryTypePatch("spiral")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}
