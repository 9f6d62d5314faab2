package dialogs

import (
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/iwtcode/robotConfigurator/pkg/errors"
)

// Name - идентификатор диалога. Допустимы только значения, объявленные в пакете;
// нулевое значение недопустимо.
type Name struct {
	id string
}

func (n Name) String() string {
	return n.id
}

func (n Name) MarshalText() ([]byte, error) {
	if !n.valid() {
		return nil, fmt.Errorf("недопустимое имя диалога")
	}
	return []byte(n.id), nil
}

func (n Name) valid() bool {
	_, ok := byID[n.id]
	return ok
}

var (
	RobotType         = Name{"robotType"}
	MovementType      = Name{"movementType"}
	CartesianParams   = Name{"cartesianParams"}
	CartesianLimits   = Name{"cartesianLimits"}
	ScaraParams       = Name{"scaraParams"}
	ScaraLimits       = Name{"scaraLimits"}
	CylindricalParams = Name{"cylindricalParams"}
	CylindricalLimits = Name{"cylindricalLimits"}
	ColerParams       = Name{"colerParams"}
	ColerLimits       = Name{"colerLimits"}
	MotorParams       = Name{"motorParams"}
	RegulatorParams   = Name{"regulatorParams"}
	Calculator        = Name{"calculator"}
	Cyclegram         = Name{"cyclegram"}
	TrajectoryType    = Name{"trajectoryType"}
	LineParams        = Name{"lineParams"}
	CircleParams      = Name{"circleParams"}
	GraphSettings     = Name{"graphSettings"}
	Creators          = Name{"creators"}
	Login             = Name{"login"}
	Register          = Name{"register"}
	SaveConfig        = Name{"saveConfig"}
	LoadConfig        = Name{"loadConfig"}
	AdminPanel        = Name{"adminPanel"}
	ChangePassword    = Name{"changePassword"}
	SplineCyclegram   = Name{"splineCyclegram"}
)

var all = []Name{
	RobotType, MovementType,
	CartesianParams, CartesianLimits, ScaraParams, ScaraLimits,
	CylindricalParams, CylindricalLimits, ColerParams, ColerLimits,
	MotorParams, RegulatorParams, Calculator, Cyclegram,
	TrajectoryType, LineParams, CircleParams, GraphSettings,
	Creators, Login, Register, SaveConfig, LoadConfig, AdminPanel,
	ChangePassword, SplineCyclegram,
}

var byID = func() map[string]Name {
	m := make(map[string]Name, len(all))
	for _, n := range all {
		m[n.id] = n
	}
	return m
}()

// All возвращает все диалоги в порядке объявления.
func All() []Name {
	return append([]Name(nil), all...)
}

// ParseName ищет диалог по строковому имени.
func ParseName(s string) (Name, error) {
	n, ok := byID[s]
	if !ok {
		return Name{}, fmt.Errorf("%w: неизвестный диалог: %q", apperrors.ErrValidation, s)
	}
	return n, nil
}

// Registry хранит видимость диалогов.
type Registry struct {
	mu   sync.RWMutex
	open map[Name]bool
}

// NewRegistry создает реестр, в котором все диалоги закрыты.
func NewRegistry() *Registry {
	open := make(map[Name]bool, len(all))
	for _, n := range all {
		open[n] = false
	}
	return &Registry{open: open}
}

func mustValid(n Name) {
	if !n.valid() {
		panic(fmt.Sprintf("dialogs: недопустимое имя диалога %q", n.id))
	}
}

// IsOpen сообщает, открыт ли диалог. Паникует на недопустимом имени.
func (r *Registry) IsOpen(n Name) bool {
	mustValid(n)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.open[n]
}

// Open открывает диалог. Паникует на недопустимом имени.
func (r *Registry) Open(n Name) {
	mustValid(n)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open[n] = true
}

// Close закрывает диалог. Паникует на недопустимом имени.
func (r *Registry) Close(n Name) {
	mustValid(n)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open[n] = false
}

// Snapshot возвращает видимость всех диалогов по строковым именам.
func (r *Registry) Snapshot() map[string]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]bool, len(r.open))
	for n, v := range r.open {
		out[n.id] = v
	}
	return out
}

// OpenNames возвращает отсортированные имена открытых диалогов.
func (r *Registry) OpenNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for n, v := range r.open {
		if v {
			names = append(names, n.id)
		}
	}
	sort.Strings(names)
	return names
}
