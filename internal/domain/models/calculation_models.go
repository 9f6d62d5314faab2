package models

// ConfigureRequest - плоская конфигурация для операции configure.
// Все поля заполнены, незаданные значения заменены значениями по умолчанию.
type ConfigureRequest struct {
	RobotType     string `json:"robot_type"`
	TypeOfControl string `json:"type_of_control"`
	Spline        bool   `json:"spline"`

	Kp []float64 `json:"Kp"`
	Ki []float64 `json:"Ki"`
	Kd []float64 `json:"Kd"`

	T  []float64 `json:"t"`
	Q1 []float64 `json:"q1"`
	Q2 []float64 `json:"q2"`
	Q3 []float64 `json:"q3"`
	Q4 []float64 `json:"q4"`

	J    []float64 `json:"J"`
	Te   []float64 `json:"T_e"`
	Umax []float64 `json:"Umax"`
	Fi   []float64 `json:"Fi"`
	Ce   []float64 `json:"Ce"`
	Ra   []float64 `json:"Ra"`
	Cm   []float64 `json:"Cm"`

	XMin     float64 `json:"x_min"`
	XMax     float64 `json:"x_max"`
	YMin     float64 `json:"y_min"`
	YMax     float64 `json:"y_max"`
	ZMin     float64 `json:"z_min"`
	ZMax     float64 `json:"z_max"`
	MassD1   float64 `json:"massd_1"`
	MassD2   float64 `json:"massd_2"`
	MassD3   float64 `json:"massd_3"`
	MomentD1 float64 `json:"momentd_1"`

	Q1SMin   float64 `json:"q1s_min"`
	Q1SMax   float64 `json:"q1s_max"`
	Q2SMin   float64 `json:"q2s_min"`
	Q2SMax   float64 `json:"q2s_max"`
	Q3SMin   float64 `json:"q3s_min"`
	Q3SMax   float64 `json:"q3s_max"`
	ZSMin    float64 `json:"zs_min"`
	ZSMax    float64 `json:"zs_max"`
	Moment1  float64 `json:"moment_1"`
	Moment2  float64 `json:"moment_2"`
	Moment3  float64 `json:"moment_3"`
	Length1  float64 `json:"length_1"`
	Length2  float64 `json:"length_2"`
	Distance float64 `json:"distance"`
	MassS2   float64 `json:"masss_2"`
	MassS3   float64 `json:"masss_3"`

	Q1CMin    float64 `json:"q1c_min"`
	Q1CMax    float64 `json:"q1c_max"`
	A2CMin    float64 `json:"a2c_min"`
	A2CMax    float64 `json:"a2c_max"`
	Q3CMin    float64 `json:"q3c_min"`
	Q3CMax    float64 `json:"q3c_max"`
	ZCMin     float64 `json:"zc_min"`
	ZCMax     float64 `json:"zc_max"`
	MomentC1  float64 `json:"momentc_1"`
	MomentC2  float64 `json:"momentc_2"`
	MomentC3  float64 `json:"momentc_3"`
	LengthC1  float64 `json:"lengthc_1"`
	LengthC2  float64 `json:"lengthc_2"`
	DistanceC float64 `json:"distancec"`
	MassC2    float64 `json:"massc_2"`
	MassC3    float64 `json:"massc_3"`

	Q1ColMin    float64 `json:"q1col_min"`
	Q1ColMax    float64 `json:"q1col_max"`
	A2ColMin    float64 `json:"a2col_min"`
	A2ColMax    float64 `json:"a2col_max"`
	Q3ColMin    float64 `json:"q3col_min"`
	Q3ColMax    float64 `json:"q3col_max"`
	ZColMin     float64 `json:"zcol_min"`
	ZColMax     float64 `json:"zcol_max"`
	MomentCol1  float64 `json:"momentcol_1"`
	MomentCol2  float64 `json:"momentcol_2"`
	MomentCol3  float64 `json:"momentcol_3"`
	LengthCol1  float64 `json:"lengthcol_1"`
	LengthCol2  float64 `json:"lengthcol_2"`
	DistanceCol float64 `json:"distancecol"`
	MassCol2    float64 `json:"masscol_2"`
	MassCol3    float64 `json:"masscol_3"`

	LineX1       float64 `json:"line_x1"`
	LineX2       float64 `json:"line_x2"`
	LineY1       float64 `json:"line_y1"`
	LineY2       float64 `json:"line_y2"`
	CircleX      float64 `json:"circle_x"`
	CircleY      float64 `json:"circle_y"`
	CircleRadius float64 `json:"circle_radius"`
}

// LineContourRequest задает линейный контур
type LineContourRequest struct {
	X1    float64 `json:"x1"`
	X2    float64 `json:"x2"`
	Y1    float64 `json:"y1"`
	Y2    float64 `json:"y2"`
	Speed float64 `json:"speed"`
}

// CircleContourRequest задает круговой контур
type CircleContourRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Speed  float64 `json:"speed"`
}

// StatusResponse - ответ сервиса на команды настройки
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
