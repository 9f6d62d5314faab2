package api

import (
	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/models"
)

var robotTypeLabels = map[models.RobotType]string{
	models.RobotCartesian:   "Декартовый",
	models.RobotScara:       "Скара",
	models.RobotCylindrical: "Цилиндрический",
	models.RobotColer:       "Колер",
}

const (
	controlPosition = "Позиционное"
	controlContour  = "Контурное"
)

// RobotTypeLabel возвращает название типа робота, принятое сервисом расчета.
func RobotTypeLabel(t models.RobotType) string {
	if label, ok := robotTypeLabels[t]; ok {
		return label
	}
	return robotTypeLabels[models.RobotCartesian]
}

// ControlTypeLabel возвращает название вида управления, принятое сервисом расчета.
func ControlTypeLabel(t models.MovementType) string {
	if t == models.MovementContour {
		return controlContour
	}
	return controlPosition
}

func series(values []models.Number, def float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Or(def)
	}
	return out
}

// NewConfigureRequest сериализует снимок конфигурации в запрос configure.
func NewConfigureRequest(cfg models.RobotConfiguration) dto.ConfigureRequest {
	cl := cfg.CartesianLimits
	cp := cfg.CartesianParams
	sl := cfg.ScaraLimits
	sp := cfg.ScaraParams
	yl := cfg.CylindricalLimits
	yp := cfg.CylindricalParams
	kl := cfg.ColerLimits
	kp := cfg.ColerParams
	m := cfg.MotorParams
	r := cfg.RegulatorParams
	c := cfg.Cyclegram
	line := cfg.Trajectory.Line
	circle := cfg.Trajectory.Circle

	return dto.ConfigureRequest{
		RobotType:     RobotTypeLabel(cfg.RobotType),
		TypeOfControl: ControlTypeLabel(cfg.MovementType),
		Spline:        cfg.GraphSettings.ShowSpline,

		Kp: series(r.Kp[:], 1),
		Ki: series(r.Ki[:], 0),
		Kd: series(r.Kd[:], 0),

		T:  series(c.T[:], 0),
		Q1: series(c.Q1[:], 0),
		Q2: series(c.Q2[:], 0),
		Q3: series(c.Q3[:], 0),
		Q4: series(c.Q4[:], 0),

		J:    series(m.J[:], 1),
		Te:   series(m.Te[:], 0.002),
		Umax: series(m.Umax[:], 24),
		Fi:   series(m.Fi[:], 1),
		Ce:   series(m.Ce[:], 1),
		Ra:   series(m.Ra[:], 1),
		Cm:   series(m.Cm[:], 1),

		XMin:     cl.Xmin.Or(0),
		XMax:     cl.Xmax.Or(1),
		YMin:     cl.Ymin.Or(0),
		YMax:     cl.Ymax.Or(1),
		ZMin:     cl.Zmin.Or(0),
		ZMax:     cl.Zmax.Or(0),
		MassD1:   cp.Mass1.Or(1),
		MassD2:   cp.Mass2.Or(1),
		MassD3:   cp.Mass3.Or(0),
		MomentD1: cp.Moment.Or(0.1),

		Q1SMin:   sl.Q1Min.Or(-1.57),
		Q1SMax:   sl.Q1Max.Or(1.57),
		Q2SMin:   sl.Q2Min.Or(-2),
		Q2SMax:   sl.Q2Max.Or(2),
		Q3SMin:   sl.Q3Min.Or(0),
		Q3SMax:   sl.Q3Max.Or(0),
		ZSMin:    sl.ZMin.Or(0),
		ZSMax:    sl.ZMax.Or(0),
		Moment1:  sp.Moment1.Or(0.1),
		Moment2:  sp.Moment2.Or(0.1),
		Moment3:  sp.Moment3.Or(0),
		Length1:  sp.Length1.Or(0.5),
		Length2:  sp.Length2.Or(0.5),
		Distance: sp.Distance.Or(0),
		MassS2:   sp.Mass2.Or(1),
		MassS3:   sp.Mass3.Or(0),

		Q1CMin:    yl.Q1Min.Or(-1.57),
		Q1CMax:    yl.Q1Max.Or(1.57),
		A2CMin:    yl.A2Min.Or(0),
		A2CMax:    yl.A2Max.Or(0.5),
		Q3CMin:    yl.Q3Min.Or(0),
		Q3CMax:    yl.Q3Max.Or(0),
		ZCMin:     yl.ZMin.Or(0),
		ZCMax:     yl.ZMax.Or(0),
		MomentC1:  yp.Moment1.Or(0.1),
		MomentC2:  yp.Moment2.Or(0.1),
		MomentC3:  yp.Moment3.Or(0),
		LengthC1:  yp.Length1.Or(0.5),
		LengthC2:  yp.Length2.Or(0.3),
		DistanceC: yp.Distance.Or(0),
		MassC2:    yp.Mass2.Or(1),
		MassC3:    yp.Mass3.Or(0),

		Q1ColMin:    kl.Q1Min.Or(-1.57),
		Q1ColMax:    kl.Q1Max.Or(1.57),
		A2ColMin:    kl.A2Min.Or(0),
		A2ColMax:    kl.A2Max.Or(0.5),
		Q3ColMin:    kl.Q3Min.Or(0),
		Q3ColMax:    kl.Q3Max.Or(0),
		ZColMin:     kl.ZMin.Or(0),
		ZColMax:     kl.ZMax.Or(0),
		MomentCol1:  kp.Moment1.Or(0.1),
		MomentCol2:  kp.Moment2.Or(0.1),
		MomentCol3:  kp.Moment3.Or(0),
		LengthCol1:  kp.Length1.Or(0.5),
		LengthCol2:  kp.Length2.Or(0.3),
		DistanceCol: kp.Distance.Or(0),
		MassCol2:    kp.Mass2.Or(1),
		MassCol3:    kp.Mass3.Or(0),

		LineX1:       line.X1.Or(0),
		LineX2:       line.X2.Or(0),
		LineY1:       line.Y1.Or(0),
		LineY2:       line.Y2.Or(0),
		CircleX:      circle.X.Or(0),
		CircleY:      circle.Y.Or(0),
		CircleRadius: circle.Radius.Or(0),
	}
}
