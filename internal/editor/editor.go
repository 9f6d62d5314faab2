// Package editor проверяет значения, введенные в формах групп параметров,
// и превращает их в патчи конфигурации.
package editor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwtcode/robotConfigurator/models"
	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

var (
	errEmpty     = errors.New("значение не задано")
	errNotNumber = errors.New("не является числом")
	errNotFinite = errors.New("значение должно быть конечным")
)

// Form - значения полей формы по ключам группы.
type Form map[string]string

// ParseNumber разбирает число с учетом запятой как десятичного разделителя.
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, apperrors.NewValidationError("", raw, errEmpty)
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("", raw, errNotNumber)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.NewValidationError("", raw, errNotFinite)
	}
	return v, nil
}

// ParseGroup заполняет все поля группы из формы. Если хотя бы одно поле
// отсутствует или некорректно, возвращается ошибка и группа не создается.
func ParseGroup[T any, PT interface {
	*T
	models.FieldGroup
}](form Form) (T, error) {
	var group T
	for _, f := range PT(&group).Fields() {
		raw, ok := form[f.Key]
		if !ok {
			var zero T
			return zero, apperrors.NewValidationError(f.Key, "", errEmpty)
		}
		v, err := ParseNumber(raw)
		if err != nil {
			var zero T
			var vErr *apperrors.ValidationError
			if errors.As(err, &vErr) {
				vErr.Field = f.Key
				return zero, vErr
			}
			return zero, err
		}
		*f.Value = models.Num(v)
	}
	return group, nil
}

// Group - имя редактируемой группы параметров.
type Group string

const (
	GroupRobotType         Group = "robotType"
	GroupMovementType      Group = "movementType"
	GroupCartesianParams   Group = "cartesianParams"
	GroupCartesianLimits   Group = "cartesianLimits"
	GroupScaraParams       Group = "scaraParams"
	GroupScaraLimits       Group = "scaraLimits"
	GroupCylindricalParams Group = "cylindricalParams"
	GroupCylindricalLimits Group = "cylindricalLimits"
	GroupColerParams       Group = "colerParams"
	GroupColerLimits       Group = "colerLimits"
	GroupMotorParams       Group = "motorParams"
	GroupRegulatorParams   Group = "regulatorParams"
	GroupCalculatorValues  Group = "calculatorValues"
	GroupCyclegram         Group = "cyclegram"
	GroupLineParams        Group = "lineParams"
	GroupCircleParams      Group = "circleParams"
	GroupGraphSettings     Group = "graphSettings"
)

// BuildPatch превращает форму одной группы в патч конфигурации.
func BuildPatch(group Group, form Form) (models.Patch, error) {
	var patch models.Patch
	var err error

	switch group {
	case GroupRobotType:
		t := models.RobotType(strings.TrimSpace(form["robotType"]))
		if !t.Valid() {
			return patch, apperrors.NewValidationError("robotType", string(t), errors.New("неизвестный тип робота"))
		}
		patch.RobotType = &t
	case GroupMovementType:
		t := models.MovementType(strings.TrimSpace(form["movementType"]))
		if !t.Valid() {
			return patch, apperrors.NewValidationError("movementType", string(t), errors.New("неизвестный тип управления"))
		}
		patch.MovementType = &t
	case GroupCartesianParams:
		patch.CartesianParams, err = parseInto[models.CartesianParams](form)
	case GroupCartesianLimits:
		patch.CartesianLimits, err = parseInto[models.CartesianLimits](form)
	case GroupScaraParams:
		patch.ScaraParams, err = parseInto[models.ArmParams](form)
	case GroupScaraLimits:
		patch.ScaraLimits, err = parseInto[models.ScaraLimits](form)
	case GroupCylindricalParams:
		patch.CylindricalParams, err = parseInto[models.ArmParams](form)
	case GroupCylindricalLimits:
		patch.CylindricalLimits, err = parseInto[models.RadialLimits](form)
	case GroupColerParams:
		patch.ColerParams, err = parseInto[models.ArmParams](form)
	case GroupColerLimits:
		patch.ColerLimits, err = parseInto[models.RadialLimits](form)
	case GroupMotorParams:
		patch.MotorParams, err = parseInto[models.MotorParams](form)
	case GroupRegulatorParams:
		patch.RegulatorParams, err = parseInto[models.RegulatorParams](form)
	case GroupCalculatorValues:
		patch.CalculatorValues, err = parseInto[models.CalculatorValues](form)
	case GroupCyclegram:
		patch.Cyclegram, err = parseInto[models.Cyclegram](form)
	case GroupLineParams:
		var line *models.LineParams
		if line, err = parseInto[models.LineParams](form); err == nil {
			patch.Trajectory = &models.TrajectoryPatch{Line: line}
		}
	case GroupCircleParams:
		var circle *models.CircleParams
		if circle, err = parseInto[models.CircleParams](form); err == nil {
			patch.Trajectory = &models.TrajectoryPatch{Circle: circle}
		}
	case GroupGraphSettings:
		return graphSettingsPatch(form)
	default:
		return patch, fmt.Errorf("%w: неизвестная группа параметров %q", apperrors.ErrValidation, group)
	}

	if err != nil {
		return models.Patch{}, err
	}
	return patch, nil
}

func parseInto[T any, PT interface {
	*T
	models.FieldGroup
}](form Form) (PT, error) {
	group, err := ParseGroup[T, PT](form)
	if err != nil {
		return nil, err
	}
	return PT(&group), nil
}

func graphSettingsPatch(form Form) (models.Patch, error) {
	coord := models.PlotType(strings.TrimSpace(form["coordType"]))
	if !coord.Valid() {
		return models.Patch{}, apperrors.NewValidationError("coordType", string(coord), errors.New("неизвестный тип графика"))
	}
	settings := &models.GraphSettingsPatch{CoordType: &coord}
	if raw, ok := form["showSpline"]; ok {
		show, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return models.Patch{}, apperrors.NewValidationError("showSpline", raw, err)
		}
		settings.ShowSpline = &show
	}
	return models.Patch{GraphSettings: settings}, nil
}

// TrajectoryTypePatch проверяет выбранный вид траектории.
func TrajectoryTypePatch(raw string) (models.Patch, error) {
	t := models.TrajectoryType(strings.TrimSpace(raw))
	if !t.Valid() {
		return models.Patch{}, apperrors.NewValidationError("type", raw, errors.New("неизвестный вид траектории"))
	}
	return models.Patch{Trajectory: &models.TrajectoryPatch{Type: &t}}, nil
}
