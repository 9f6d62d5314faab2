package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

var errUnknownValue = errors.New("недопустимое значение")

// Overlay накладывает JSON-объект на конфигурацию: каждая найденная группа
// верхнего уровня заменяется целиком, остальные группы сохраняются.
func Overlay(base RobotConfiguration, data []byte) (RobotConfiguration, error) {
	var groups map[string]json.RawMessage
	if err := json.Unmarshal(data, &groups); err != nil {
		return base, fmt.Errorf("ожидается объект конфигурации: %w", err)
	}

	encoded, err := json.Marshal(base)
	if err != nil {
		return base, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &merged); err != nil {
		return base, err
	}
	for key, value := range groups {
		if _, known := merged[key]; !known {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		merged[key] = value
	}

	encoded, err = json.Marshal(merged)
	if err != nil {
		return base, err
	}
	var out RobotConfiguration
	if err := json.Unmarshal(encoded, &out); err != nil {
		return base, fmt.Errorf("некорректная конфигурация: %w", err)
	}
	if err := out.Validate(); err != nil {
		return base, err
	}
	return out.Normalize(), nil
}

// Normalize заменяет незаданные перечисления значениями по умолчанию.
func (c RobotConfiguration) Normalize() RobotConfiguration {
	def := DefaultConfiguration()
	if c.RobotType == "" {
		c.RobotType = def.RobotType
	}
	if c.MovementType == "" {
		c.MovementType = def.MovementType
	}
	if c.Trajectory.Type == "" {
		c.Trajectory.Type = def.Trajectory.Type
	}
	if c.GraphSettings.CoordType == "" {
		c.GraphSettings.CoordType = def.GraphSettings.CoordType
	}
	return c
}

// Validate проверяет перечисления; пустые значения допустимы и заполняются Normalize.
func (c RobotConfiguration) Validate() error {
	switch {
	case c.RobotType != "" && !c.RobotType.Valid():
		return apperrors.NewValidationError("robotType", string(c.RobotType), errUnknownValue)
	case c.MovementType != "" && !c.MovementType.Valid():
		return apperrors.NewValidationError("movementType", string(c.MovementType), errUnknownValue)
	case c.Trajectory.Type != "" && !c.Trajectory.Type.Valid():
		return apperrors.NewValidationError("trajectory.type", string(c.Trajectory.Type), errUnknownValue)
	case c.GraphSettings.CoordType != "" && !c.GraphSettings.CoordType.Valid():
		return apperrors.NewValidationError("graphSettings.coordType", string(c.GraphSettings.CoordType), errUnknownValue)
	}
	return nil
}
