package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Number хранит числовое значение параметра либо признак "не задано".
// Нулевое значение Number означает незаданное поле.
type Number struct {
	Value float64
	Valid bool
}

// Num возвращает заданное значение.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Unset возвращает незаданное значение.
func Unset() Number {
	return Number{}
}

// Or возвращает значение либо def, если поле не задано.
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}

func (n Number) String() string {
	if !n.Valid {
		return "null"
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	if math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return nil, fmt.Errorf("недопустимое числовое значение: %v", n.Value)
	}
	return []byte(strconv.FormatFloat(n.Value, 'g', -1, 64)), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("ожидалось число или null: %w", err)
	}
	*n = Num(v)
	return nil
}

// MarshalYAML пишет null для незаданного поля.
func (n Number) MarshalYAML() (interface{}, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Value, nil
}
