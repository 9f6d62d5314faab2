package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	dto "github.com/iwtcode/robotConfigurator/internal/domain/models"
	"github.com/iwtcode/robotConfigurator/internal/services/calculation"
	"github.com/iwtcode/robotConfigurator/internal/services/dialogs"
	"github.com/iwtcode/robotConfigurator/internal/services/persistence"
	"github.com/iwtcode/robotConfigurator/models"
)

func (u *Usecase) ListConfigs(ctx context.Context) ([]models.ConfigSummary, error) {
	return u.Remote.List(ctx)
}

// SaveConfig обновляет текущую запись или создает новую, если записи нет или asNew.
func (u *Usecase) SaveConfig(ctx context.Context, name string, asNew bool) (*models.PersistedConfigRecord, error) {
	// отключение клиента не должно оставлять запись и связь с ней рассогласованными
	ctx = context.WithoutCancel(ctx)
	name = strings.TrimSpace(name)
	current, linked := u.Record.Current()
	if name == "" && linked {
		name = current.Name
	}
	cfg := u.Store.Get()

	var (
		record *models.PersistedConfigRecord
		err    error
	)
	if linked && !asNew {
		record, err = u.Remote.Update(ctx, current.ID, dto.UpdateConfigRequest{Name: &name, ConfigData: &cfg})
	} else {
		record, err = u.Remote.Create(ctx, name, cfg)
	}
	if err != nil {
		u.Log.Error("Ошибка сохранения: " + calculation.UserMessage(err))
		return nil, err
	}

	u.Record.Set(models.RecordRef{ID: record.ID, Name: record.Name})
	if linked && !asNew {
		u.Log.Success(fmt.Sprintf("Конфигурация \"%s\" обновлена", record.Name))
	} else {
		u.Log.Success(fmt.Sprintf("Конфигурация \"%s\" сохранена", record.Name))
	}
	u.Registry.Close(dialogs.SaveConfig)
	return record, nil
}

// LoadConfig заменяет конфигурацию сохраненной записью и связывает с ней.
func (u *Usecase) LoadConfig(ctx context.Context, id int64) (*models.PersistedConfigRecord, error) {
	record, err := u.Remote.Fetch(context.WithoutCancel(ctx), id)
	if err != nil {
		u.Log.Error("Ошибка загрузки: " + calculation.UserMessage(err))
		return nil, err
	}
	u.Store.Replace(record.ConfigData)
	u.Record.Set(models.RecordRef{ID: record.ID, Name: record.Name})
	u.Log.Success(fmt.Sprintf("Конфигурация \"%s\" загружена", record.Name))
	u.Registry.Close(dialogs.LoadConfig)
	return record, nil
}

func (u *Usecase) DeleteConfig(ctx context.Context, id int64) error {
	if err := u.Remote.Delete(ctx, id); err != nil {
		return err
	}
	name := fmt.Sprintf("#%d", id)
	if current, ok := u.Record.Current(); ok && current.ID == id {
		name = current.Name
		u.Record.Detach(current.Name)
	}
	u.Log.Success(fmt.Sprintf("Конфигурация \"%s\" удалена", name))
	return nil
}

// CurrentRecord возвращает связанную запись (если есть) и отображаемое имя.
func (u *Usecase) CurrentRecord() (*models.RecordRef, string) {
	label := u.Record.Label()
	if ref, ok := u.Record.Current(); ok {
		return &ref, label
	}
	return nil, label
}

// ImportFile разбирает локальный файл поверх текущей конфигурации.
func (u *Usecase) ImportFile(filename string, r io.Reader) (models.RobotConfiguration, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	u.Log.Info(fmt.Sprintf("Загрузка файла: %s...", name))

	cfg, err := u.Files.Import(r, u.Store.Get())
	if err != nil {
		u.Log.Error("Ошибка загрузки файла: " + calculation.UserMessage(err))
		return u.Store.Get(), err
	}
	u.Store.Replace(cfg)
	u.setFileName(name)
	u.Log.Success(fmt.Sprintf("Файл \"%s\" успешно загружен", name))
	return cfg, nil
}

// ExportFile сохраняет конфигурацию в файл; пустое имя означает текущее.
func (u *Usecase) ExportFile(filename string) (string, error) {
	name := u.targetName(filename)
	u.Log.Info(fmt.Sprintf("Сохранение конфигурации как \"%s\"...", name))

	path, err := u.Files.Export(u.Store.Get(), name)
	if err != nil {
		u.Log.Error("Ошибка сохранения файла: " + calculation.UserMessage(err))
		return "", err
	}
	u.setFileName(filepath.Base(path))
	u.Log.Success("Файл успешно сохранён")
	return path, nil
}

// UploadFile отдает файл на разбор сервису и применяет найденные группы.
func (u *Usecase) UploadFile(ctx context.Context, filename string, r io.Reader) (models.RobotConfiguration, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	u.Log.Info(fmt.Sprintf("Загрузка файла: %s...", name))

	cfg, accepted, err := u.RemoteFiles.Import(context.WithoutCancel(ctx), name, r, u.Store.Get())
	if err != nil {
		u.Log.Error("Ошибка загрузки файла: " + calculation.UserMessage(err))
		return u.Store.Get(), err
	}
	u.Store.Replace(cfg)
	u.setFileName(name)
	u.Log.Success(fmt.Sprintf("Файл \"%s\" успешно загружен", accepted))
	return cfg, nil
}

// DownloadFile получает текст файла от сервиса и сохраняет его в каталог экспорта.
func (u *Usecase) DownloadFile(ctx context.Context, filename string) (string, error) {
	name := u.targetName(filename)
	u.Log.Info(fmt.Sprintf("Сохранение конфигурации как \"%s\"...", name))

	path, err := u.RemoteFiles.Export(ctx, u.Store.Get(), name)
	if err != nil {
		u.Log.Error("Ошибка сохранения файла: " + calculation.UserMessage(err))
		return "", err
	}
	u.setFileName(filepath.Base(path))
	u.Log.Success("Файл успешно сохранён")
	return path, nil
}

func (u *Usecase) CurrentFileName() string {
	u.fileMu.RLock()
	defer u.fileMu.RUnlock()
	return u.fileName
}

func (u *Usecase) targetName(filename string) string {
	if strings.TrimSpace(filename) == "" {
		return u.CurrentFileName()
	}
	return persistence.NormalizeFilename(filename)
}

func (u *Usecase) setFileName(name string) {
	u.fileMu.Lock()
	defer u.fileMu.Unlock()
	u.fileName = name
}
