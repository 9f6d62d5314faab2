package models

import "fmt"

// Field связывает ключ поля формы с числовым полем группы.
type Field struct {
	Key   string
	Value *Number
}

// FieldGroup - группа параметров, поля которой перечислены в фиксированном порядке.
type FieldGroup interface {
	Fields() []Field
}

func (p *CartesianParams) Fields() []Field {
	return []Field{
		{"mass1", &p.Mass1},
		{"mass2", &p.Mass2},
		{"mass3", &p.Mass3},
		{"moment", &p.Moment},
	}
}

func (l *CartesianLimits) Fields() []Field {
	return []Field{
		{"Xmin", &l.Xmin}, {"Xmax", &l.Xmax},
		{"Ymin", &l.Ymin}, {"Ymax", &l.Ymax},
		{"Zmin", &l.Zmin}, {"Zmax", &l.Zmax},
		{"Qmin", &l.Qmin}, {"Qmax", &l.Qmax},
	}
}

func (p *ArmParams) Fields() []Field {
	return []Field{
		{"moment1", &p.Moment1},
		{"moment2", &p.Moment2},
		{"moment3", &p.Moment3},
		{"length1", &p.Length1},
		{"length2", &p.Length2},
		{"distance", &p.Distance},
		{"mass2", &p.Mass2},
		{"mass3", &p.Mass3},
	}
}

func (l *ScaraLimits) Fields() []Field {
	return []Field{
		{"q1Min", &l.Q1Min}, {"q1Max", &l.Q1Max},
		{"q2Min", &l.Q2Min}, {"q2Max", &l.Q2Max},
		{"q3Min", &l.Q3Min}, {"q3Max", &l.Q3Max},
		{"zMin", &l.ZMin}, {"zMax", &l.ZMax},
	}
}

func (l *RadialLimits) Fields() []Field {
	return []Field{
		{"q1Min", &l.Q1Min}, {"q1Max", &l.Q1Max},
		{"a2Min", &l.A2Min}, {"a2Max", &l.A2Max},
		{"q3Min", &l.Q3Min}, {"q3Max", &l.Q3Max},
		{"zMin", &l.ZMin}, {"zMax", &l.ZMax},
	}
}

func (m *MotorParams) Fields() []Field {
	var fields []Field
	fields = appendSeries(fields, "J", m.J[:])
	fields = appendSeries(fields, "Te", m.Te[:])
	fields = appendSeries(fields, "Umax", m.Umax[:])
	fields = appendSeries(fields, "Fi", m.Fi[:])
	fields = appendSeries(fields, "Ce", m.Ce[:])
	fields = appendSeries(fields, "Ra", m.Ra[:])
	fields = appendSeries(fields, "Cm", m.Cm[:])
	return fields
}

func (r *RegulatorParams) Fields() []Field {
	var fields []Field
	fields = appendSeries(fields, "Kp", r.Kp[:])
	fields = appendSeries(fields, "Ki", r.Ki[:])
	fields = appendSeries(fields, "Kd", r.Kd[:])
	return fields
}

func (c *CalculatorValues) Fields() []Field {
	return []Field{
		{"bitDepth", &c.BitDepth},
		{"exchangeCycle", &c.ExchangeCycle},
		{"controlCycle", &c.ControlCycle},
		{"filterConstant", &c.FilterConstant},
	}
}

func (c *Cyclegram) Fields() []Field {
	var fields []Field
	fields = appendSeries(fields, "t", c.T[:])
	fields = appendSeries(fields, "q1", c.Q1[:])
	fields = appendSeries(fields, "q2", c.Q2[:])
	fields = appendSeries(fields, "q3", c.Q3[:])
	fields = appendSeries(fields, "q4", c.Q4[:])
	return fields
}

func (l *LineParams) Fields() []Field {
	return []Field{
		{"x1", &l.X1}, {"x2", &l.X2},
		{"y1", &l.Y1}, {"y2", &l.Y2},
		{"speed", &l.Speed},
	}
}

func (c *CircleParams) Fields() []Field {
	return []Field{
		{"x", &c.X}, {"y", &c.Y},
		{"radius", &c.Radius},
		{"speed", &c.Speed},
	}
}

// SeriesKey возвращает ключ элемента векторного параметра, например "Kp[2]".
func SeriesKey(name string, index int) string {
	return fmt.Sprintf("%s[%d]", name, index)
}

func appendSeries(fields []Field, name string, values []Number) []Field {
	for i := range values {
		fields = append(fields, Field{Key: SeriesKey(name, i), Value: &values[i]})
	}
	return fields
}

// mergeFields переносит заданные поля src в dst. Группы должны быть одного типа.
func mergeFields(dst, src FieldGroup) {
	srcFields := src.Fields()
	for i, f := range dst.Fields() {
		if srcFields[i].Value.Valid {
			*f.Value = *srcFields[i].Value
		}
	}
}
