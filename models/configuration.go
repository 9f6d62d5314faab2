package models

import "fmt"

// RobotType определяет кинематическую схему робота
type RobotType string

const (
	RobotCartesian   RobotType = "cartesian"
	RobotCylindrical RobotType = "cylindrical"
	RobotScara       RobotType = "scara"
	RobotColer       RobotType = "coler"
)

// Valid сообщает, входит ли значение в перечисление.
func (t RobotType) Valid() bool {
	switch t {
	case RobotCartesian, RobotCylindrical, RobotScara, RobotColer:
		return true
	}
	return false
}

// MovementType определяет вид управления движением
type MovementType string

const (
	MovementPosition MovementType = "position"
	MovementContour  MovementType = "contour"
)

func (t MovementType) Valid() bool {
	return t == MovementPosition || t == MovementContour
}

// TrajectoryType выбирает вариант контурной траектории
type TrajectoryType string

const (
	TrajectoryLine   TrajectoryType = "line"
	TrajectoryCircle TrajectoryType = "circle"
)

func (t TrajectoryType) Valid() bool {
	return t == TrajectoryLine || t == TrajectoryCircle
}

// PlotType задает вид графика в настройках отображения
type PlotType string

const (
	PlotGeneral     PlotType = "general"
	PlotPlane       PlotType = "plane"
	PlotTime        PlotType = "time"
	PlotSpeed       PlotType = "speed"
	PlotAccel       PlotType = "accel"
	PlotVoltage     PlotType = "voltage"
	PlotVoltageStar PlotType = "voltage_star"
	PlotCurrent     PlotType = "current"
	PlotMotorMoment PlotType = "motor_moment"
	PlotLoadMoment  PlotType = "load_moment"
	PlotMomentStar  PlotType = "moment_star"
)

var plotAPIIDs = map[PlotType]string{
	PlotGeneral:     "obobshennie_coordinates",
	PlotPlane:       "decart_plane",
	PlotTime:        "decart_coordinates",
	PlotSpeed:       "speed",
	PlotAccel:       "acceleration",
	PlotVoltage:     "voltage",
	PlotVoltageStar: "voltage_star",
	PlotCurrent:     "current",
	PlotMotorMoment: "motor_moment",
	PlotLoadMoment:  "load_moment",
	PlotMomentStar:  "moment_star",
}

func (t PlotType) Valid() bool {
	_, ok := plotAPIIDs[t]
	return ok
}

// APIID возвращает идентификатор графика в сервисе расчета.
func (t PlotType) APIID() (string, error) {
	id, ok := plotAPIIDs[t]
	if !ok {
		return "", fmt.Errorf("неизвестный тип графика: %q", t)
	}
	return id, nil
}

// PlotTypes возвращает все виды графиков.
func PlotTypes() []PlotType {
	return []PlotType{
		PlotGeneral, PlotPlane, PlotTime, PlotSpeed, PlotAccel, PlotVoltage,
		PlotVoltageStar, PlotCurrent, PlotMotorMoment, PlotLoadMoment, PlotMomentStar,
	}
}

// CartesianParams содержит конструктивные параметры декартового робота
type CartesianParams struct {
	Mass1  Number `json:"mass1" yaml:"mass1"`
	Mass2  Number `json:"mass2" yaml:"mass2"`
	Mass3  Number `json:"mass3" yaml:"mass3"`
	Moment Number `json:"moment" yaml:"moment"`
}

// CartesianLimits содержит границы рабочей зоны декартового робота
type CartesianLimits struct {
	Xmin Number `json:"Xmin" yaml:"Xmin"`
	Xmax Number `json:"Xmax" yaml:"Xmax"`
	Ymin Number `json:"Ymin" yaml:"Ymin"`
	Ymax Number `json:"Ymax" yaml:"Ymax"`
	Zmin Number `json:"Zmin" yaml:"Zmin"`
	Zmax Number `json:"Zmax" yaml:"Zmax"`
	Qmin Number `json:"Qmin" yaml:"Qmin"`
	Qmax Number `json:"Qmax" yaml:"Qmax"`
}

// ArmParams содержит конструктивные параметры скара, цилиндрического и колер роботов
type ArmParams struct {
	Moment1  Number `json:"moment1" yaml:"moment1"`
	Moment2  Number `json:"moment2" yaml:"moment2"`
	Moment3  Number `json:"moment3" yaml:"moment3"`
	Length1  Number `json:"length1" yaml:"length1"`
	Length2  Number `json:"length2" yaml:"length2"`
	Distance Number `json:"distance" yaml:"distance"`
	Mass2    Number `json:"mass2" yaml:"mass2"`
	Mass3    Number `json:"mass3" yaml:"mass3"`
}

// ScaraLimits содержит ограничения обобщенных координат скара робота
type ScaraLimits struct {
	Q1Min Number `json:"q1Min" yaml:"q1Min"`
	Q1Max Number `json:"q1Max" yaml:"q1Max"`
	Q2Min Number `json:"q2Min" yaml:"q2Min"`
	Q2Max Number `json:"q2Max" yaml:"q2Max"`
	Q3Min Number `json:"q3Min" yaml:"q3Min"`
	Q3Max Number `json:"q3Max" yaml:"q3Max"`
	ZMin  Number `json:"zMin" yaml:"zMin"`
	ZMax  Number `json:"zMax" yaml:"zMax"`
}

// RadialLimits содержит ограничения цилиндрического и колер роботов
type RadialLimits struct {
	Q1Min Number `json:"q1Min" yaml:"q1Min"`
	Q1Max Number `json:"q1Max" yaml:"q1Max"`
	A2Min Number `json:"a2Min" yaml:"a2Min"`
	A2Max Number `json:"a2Max" yaml:"a2Max"`
	Q3Min Number `json:"q3Min" yaml:"q3Min"`
	Q3Max Number `json:"q3Max" yaml:"q3Max"`
	ZMin  Number `json:"zMin" yaml:"zMin"`
	ZMax  Number `json:"zMax" yaml:"zMax"`
}

// MotorParams содержит параметры двух двигателей
type MotorParams struct {
	J    [2]Number `json:"J" yaml:"J"`
	Te   [2]Number `json:"Te" yaml:"Te"`
	Umax [2]Number `json:"Umax" yaml:"Umax"`
	Fi   [2]Number `json:"Fi" yaml:"Fi"`
	Ce   [2]Number `json:"Ce" yaml:"Ce"`
	Ra   [2]Number `json:"Ra" yaml:"Ra"`
	Cm   [2]Number `json:"Cm" yaml:"Cm"`
}

// RegulatorParams содержит коэффициенты ПИД-регулятора по четырем степеням подвижности
type RegulatorParams struct {
	Kp [4]Number `json:"Kp" yaml:"Kp"`
	Ki [4]Number `json:"Ki" yaml:"Ki"`
	Kd [4]Number `json:"Kd" yaml:"Kd"`
}

// CalculatorValues содержит параметры вычислителя
type CalculatorValues struct {
	BitDepth       Number `json:"bitDepth" yaml:"bitDepth"`
	ExchangeCycle  Number `json:"exchangeCycle" yaml:"exchangeCycle"`
	ControlCycle   Number `json:"controlCycle" yaml:"controlCycle"`
	FilterConstant Number `json:"filterConstant" yaml:"filterConstant"`
}

// CyclegramPoints - число опорных точек циклограммы
const CyclegramPoints = 9

// Cyclegram содержит моменты времени и программные значения обобщенных координат
type Cyclegram struct {
	T  [CyclegramPoints]Number `json:"t" yaml:"t"`
	Q1 [CyclegramPoints]Number `json:"q1" yaml:"q1"`
	Q2 [CyclegramPoints]Number `json:"q2" yaml:"q2"`
	Q3 [CyclegramPoints]Number `json:"q3" yaml:"q3"`
	Q4 [CyclegramPoints]Number `json:"q4" yaml:"q4"`
}

// LineParams задает прямую для контурного управления
type LineParams struct {
	X1    Number `json:"x1" yaml:"x1"`
	X2    Number `json:"x2" yaml:"x2"`
	Y1    Number `json:"y1" yaml:"y1"`
	Y2    Number `json:"y2" yaml:"y2"`
	Speed Number `json:"speed" yaml:"speed"`
}

// Complete сообщает, заданы ли обе точки прямой.
func (l LineParams) Complete() bool {
	return l.X1.Valid && l.X2.Valid && l.Y1.Valid && l.Y2.Valid
}

// CircleParams задает окружность для контурного управления
type CircleParams struct {
	X      Number `json:"x" yaml:"x"`
	Y      Number `json:"y" yaml:"y"`
	Radius Number `json:"radius" yaml:"radius"`
	Speed  Number `json:"speed" yaml:"speed"`
}

// Complete сообщает, заданы ли центр и радиус окружности.
func (c CircleParams) Complete() bool {
	return c.X.Valid && c.Y.Valid && c.Radius.Valid
}

// Trajectory - желаемая траектория рабочего органа
type Trajectory struct {
	Type   TrajectoryType `json:"type" yaml:"type"`
	Line   LineParams     `json:"line" yaml:"line"`
	Circle CircleParams   `json:"circle" yaml:"circle"`
}

// GraphSettings содержит настройки отображения графиков
type GraphSettings struct {
	CoordType  PlotType `json:"coordType" yaml:"coordType"`
	ShowSpline bool     `json:"showSpline" yaml:"showSpline"`
}

// RobotConfiguration - полное дерево конфигурации робота.
// Все четыре набора параметров хранятся одновременно, RobotType выбирает активный.
type RobotConfiguration struct {
	RobotType         RobotType        `json:"robotType" yaml:"robotType"`
	MovementType      MovementType     `json:"movementType" yaml:"movementType"`
	CartesianParams   CartesianParams  `json:"cartesianParams" yaml:"cartesianParams"`
	CartesianLimits   CartesianLimits  `json:"cartesianLimits" yaml:"cartesianLimits"`
	ScaraParams       ArmParams        `json:"scaraParams" yaml:"scaraParams"`
	ScaraLimits       ScaraLimits      `json:"scaraLimits" yaml:"scaraLimits"`
	CylindricalParams ArmParams        `json:"cylindricalParams" yaml:"cylindricalParams"`
	CylindricalLimits RadialLimits     `json:"cylindricalLimits" yaml:"cylindricalLimits"`
	ColerParams       ArmParams        `json:"colerParams" yaml:"colerParams"`
	ColerLimits       RadialLimits     `json:"colerLimits" yaml:"colerLimits"`
	MotorParams       MotorParams      `json:"motorParams" yaml:"motorParams"`
	RegulatorParams   RegulatorParams  `json:"regulatorParams" yaml:"regulatorParams"`
	CalculatorValues  CalculatorValues `json:"calculatorValues" yaml:"calculatorValues"`
	Cyclegram         Cyclegram        `json:"cyclegram" yaml:"cyclegram"`
	Trajectory        Trajectory       `json:"trajectory" yaml:"trajectory"`
	GraphSettings     GraphSettings    `json:"graphSettings" yaml:"graphSettings"`
}

// DefaultConfiguration возвращает исходное состояние: декартовый робот,
// позиционное управление, прямая, обобщенные координаты, все числа не заданы.
func DefaultConfiguration() RobotConfiguration {
	return RobotConfiguration{
		RobotType:    RobotCartesian,
		MovementType: MovementPosition,
		Trajectory:   Trajectory{Type: TrajectoryLine},
		GraphSettings: GraphSettings{
			CoordType:  PlotGeneral,
			ShowSpline: false,
		},
	}
}
