package models

// Patch - частичное обновление конфигурации. Nil-группы не затрагиваются,
// внутри группы переносятся только заданные поля.
type Patch struct {
	RobotType         *RobotType          `json:"robotType,omitempty"`
	MovementType      *MovementType       `json:"movementType,omitempty"`
	CartesianParams   *CartesianParams    `json:"cartesianParams,omitempty"`
	CartesianLimits   *CartesianLimits    `json:"cartesianLimits,omitempty"`
	ScaraParams       *ArmParams          `json:"scaraParams,omitempty"`
	ScaraLimits       *ScaraLimits        `json:"scaraLimits,omitempty"`
	CylindricalParams *ArmParams          `json:"cylindricalParams,omitempty"`
	CylindricalLimits *RadialLimits       `json:"cylindricalLimits,omitempty"`
	ColerParams       *ArmParams          `json:"colerParams,omitempty"`
	ColerLimits       *RadialLimits       `json:"colerLimits,omitempty"`
	MotorParams       *MotorParams        `json:"motorParams,omitempty"`
	RegulatorParams   *RegulatorParams    `json:"regulatorParams,omitempty"`
	CalculatorValues  *CalculatorValues   `json:"calculatorValues,omitempty"`
	Cyclegram         *Cyclegram          `json:"cyclegram,omitempty"`
	Trajectory        *TrajectoryPatch    `json:"trajectory,omitempty"`
	GraphSettings     *GraphSettingsPatch `json:"graphSettings,omitempty"`
}

// TrajectoryPatch обновляет вид траектории и параметры ее вариантов.
type TrajectoryPatch struct {
	Type   *TrajectoryType `json:"type,omitempty"`
	Line   *LineParams     `json:"line,omitempty"`
	Circle *CircleParams   `json:"circle,omitempty"`
}

// GraphSettingsPatch обновляет настройки графиков.
type GraphSettingsPatch struct {
	CoordType  *PlotType `json:"coordType,omitempty"`
	ShowSpline *bool     `json:"showSpline,omitempty"`
}

// Empty сообщает, что патч ничего не меняет.
func (p Patch) Empty() bool {
	return p == Patch{}
}

// Apply возвращает копию cfg с примененным патчем.
func (p Patch) Apply(cfg RobotConfiguration) RobotConfiguration {
	if p.RobotType != nil {
		cfg.RobotType = *p.RobotType
	}
	if p.MovementType != nil {
		cfg.MovementType = *p.MovementType
	}

	mergeGroup(&cfg.CartesianParams, p.CartesianParams)
	mergeGroup(&cfg.CartesianLimits, p.CartesianLimits)
	mergeGroup(&cfg.ScaraParams, p.ScaraParams)
	mergeGroup(&cfg.ScaraLimits, p.ScaraLimits)
	mergeGroup(&cfg.CylindricalParams, p.CylindricalParams)
	mergeGroup(&cfg.CylindricalLimits, p.CylindricalLimits)
	mergeGroup(&cfg.ColerParams, p.ColerParams)
	mergeGroup(&cfg.ColerLimits, p.ColerLimits)
	mergeGroup(&cfg.MotorParams, p.MotorParams)
	mergeGroup(&cfg.RegulatorParams, p.RegulatorParams)
	mergeGroup(&cfg.CalculatorValues, p.CalculatorValues)
	mergeGroup(&cfg.Cyclegram, p.Cyclegram)

	if t := p.Trajectory; t != nil {
		if t.Type != nil {
			cfg.Trajectory.Type = *t.Type
		}
		mergeGroup(&cfg.Trajectory.Line, t.Line)
		mergeGroup(&cfg.Trajectory.Circle, t.Circle)
	}

	if g := p.GraphSettings; g != nil {
		if g.CoordType != nil {
			cfg.GraphSettings.CoordType = *g.CoordType
		}
		if g.ShowSpline != nil {
			cfg.GraphSettings.ShowSpline = *g.ShowSpline
		}
	}

	return cfg
}

// mergeGroup принимает указатели одного типа, src может быть nil.
func mergeGroup[T any, PT interface {
	*T
	FieldGroup
}](dst PT, src PT) {
	if src == nil {
		return
	}
	mergeFields(dst, src)
}
