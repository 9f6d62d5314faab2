package usecases

import (
	"github.com/iwtcode/robotConfigurator/internal/editor"
	"github.com/iwtcode/robotConfigurator/internal/services/dialogs"
	"github.com/iwtcode/robotConfigurator/models"
)

// groupDialogs сопоставляет группу параметров ее диалогу.
var groupDialogs = map[editor.Group]dialogs.Name{
	editor.GroupRobotType:         dialogs.RobotType,
	editor.GroupMovementType:      dialogs.MovementType,
	editor.GroupCartesianParams:   dialogs.CartesianParams,
	editor.GroupCartesianLimits:   dialogs.CartesianLimits,
	editor.GroupScaraParams:       dialogs.ScaraParams,
	editor.GroupScaraLimits:       dialogs.ScaraLimits,
	editor.GroupCylindricalParams: dialogs.CylindricalParams,
	editor.GroupCylindricalLimits: dialogs.CylindricalLimits,
	editor.GroupColerParams:       dialogs.ColerParams,
	editor.GroupColerLimits:       dialogs.ColerLimits,
	editor.GroupMotorParams:       dialogs.MotorParams,
	editor.GroupRegulatorParams:   dialogs.RegulatorParams,
	editor.GroupCalculatorValues:  dialogs.Calculator,
	editor.GroupCyclegram:         dialogs.Cyclegram,
	editor.GroupLineParams:        dialogs.LineParams,
	editor.GroupCircleParams:      dialogs.CircleParams,
	editor.GroupGraphSettings:     dialogs.GraphSettings,
}

func (u *Usecase) Configuration() models.RobotConfiguration {
	return u.Store.Get()
}

// ApplyGroup проверяет форму группы, применяет ее целиком и закрывает диалог группы.
// При ошибке конфигурация и диалоги не меняются.
func (u *Usecase) ApplyGroup(group string, form map[string]string) (models.RobotConfiguration, error) {
	g := editor.Group(group)
	patch, err := editor.BuildPatch(g, editor.Form(form))
	if err != nil {
		u.logger.Debug("Group form rejected", "group", group, "error", err)
		return u.Store.Get(), err
	}
	cfg := u.Store.Merge(patch)
	if name, ok := groupDialogs[g]; ok {
		u.Registry.Close(name)
	}
	u.logger.Debug("Group applied", "group", group)
	return cfg, nil
}

// ReplaceConfiguration заменяет дерево целиком; при недопустимом перечислении хранилище не меняется.
func (u *Usecase) ReplaceConfiguration(cfg models.RobotConfiguration) (models.RobotConfiguration, error) {
	if err := cfg.Validate(); err != nil {
		u.logger.Debug("Configuration replace rejected", "error", err)
		return u.Store.Get(), err
	}
	return u.Store.Replace(cfg.Normalize()), nil
}

// ConfirmTrajectoryType сохраняет вид траектории и открывает диалог ее параметров.
func (u *Usecase) ConfirmTrajectoryType(raw string) (models.RobotConfiguration, error) {
	patch, err := editor.TrajectoryTypePatch(raw)
	if err != nil {
		return u.Store.Get(), err
	}
	cfg := u.Store.Merge(patch)
	u.Registry.Close(dialogs.TrajectoryType)
	if cfg.Trajectory.Type == models.TrajectoryCircle {
		u.Registry.Open(dialogs.CircleParams)
	} else {
		u.Registry.Open(dialogs.LineParams)
	}
	return cfg, nil
}

func (u *Usecase) Dialogs() map[string]bool {
	return u.Registry.Snapshot()
}

func (u *Usecase) OpenDialog(name string) error {
	n, err := dialogs.ParseName(name)
	if err != nil {
		return err
	}
	u.Registry.Open(n)
	return nil
}

func (u *Usecase) CloseDialog(name string) error {
	n, err := dialogs.ParseName(name)
	if err != nil {
		return err
	}
	u.Registry.Close(n)
	return nil
}
