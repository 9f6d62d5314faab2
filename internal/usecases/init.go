package usecases

import (
	"sync"

	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/internal/services/calculation"
	"github.com/iwtcode/robotConfigurator/internal/services/dialogs"
	"github.com/iwtcode/robotConfigurator/internal/services/logsink"
	"github.com/iwtcode/robotConfigurator/internal/services/persistence"
	"github.com/iwtcode/robotConfigurator/internal/services/session"
	"github.com/iwtcode/robotConfigurator/internal/services/store"
)

// Deps - компоненты, которыми управляют use cases
type Deps struct {
	Store       *store.Store
	Record      *store.RecordPointer
	Registry    *dialogs.Registry
	Session     *session.Manager
	Remote      *persistence.Remote
	Files       *persistence.Files
	RemoteFiles *persistence.RemoteFiles
	Admin       *persistence.Admin
	Calculation *calculation.Orchestrator
	Log         *logsink.Sink
	Logger      *logging.Logger
}

type Usecase struct {
	Deps
	logger *logging.Logger

	fileMu   sync.RWMutex
	fileName string
}

// NewUsecases - конструктор для UseCases
func NewUsecases(deps Deps) interfaces.Usecases {
	return NewUsecase(deps)
}

func NewUsecase(deps Deps) *Usecase {
	return &Usecase{
		Deps:     deps,
		logger:   deps.Logger.WithPrefix("USECASE"),
		fileName: persistence.DefaultFilename,
	}
}
