package handlers

import (
	"net/http"

	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())
	router.Use(LoggingMiddleware(h.logger, h.usecase))

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		configuration := v1.Group("/config")
		{
			configuration.GET("", h.GetConfiguration)
			configuration.PUT("", h.ReplaceConfiguration)
			configuration.PATCH("/:group", h.ApplyGroup)
			configuration.POST("/trajectory-type", h.ConfirmTrajectoryType)
		}

		dialogs := v1.Group("/dialogs")
		{
			dialogs.GET("", h.GetDialogs)
			dialogs.POST("/:name/open", h.OpenDialog)
			dialogs.POST("/:name/close", h.CloseDialog)
		}

		session := v1.Group("/session")
		{
			session.GET("", h.GetSession)
			session.POST("/restore", h.RestoreSession)
			session.POST("/login", h.Login)
			session.POST("/register", h.Register)
			session.POST("/logout", h.Logout)
			session.POST("/change-password", h.ChangePassword)
		}

		configs := v1.Group("/configs")
		{
			configs.GET("", h.ListConfigs)
			configs.POST("", h.SaveConfig)
			configs.GET("/current", h.CurrentRecord)
			configs.POST("/:id/load", h.LoadConfig)
			configs.DELETE("/:id", h.DeleteConfig)
		}

		files := v1.Group("/files")
		{
			files.GET("/current", h.CurrentFile)
			files.POST("/import", h.ImportFile)
			files.POST("/export", h.ExportFile)
			files.POST("/upload", h.UploadFile)
			files.POST("/download", h.DownloadFile)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/users", h.AdminListUsers)
			admin.GET("/users/:id", h.AdminGetUser)
			admin.DELETE("/users/:id", h.AdminDeleteUser)
			admin.POST("/users/:id/toggle-admin", h.AdminToggleAdmin)
			admin.GET("/configs", h.AdminListConfigs)
			admin.POST("/configs/:id/load", h.AdminLoadConfig)
			admin.DELETE("/configs/:id", h.AdminDeleteConfig)
		}

		calculation := v1.Group("/calculation")
		{
			calculation.POST("", h.Calculate)
			calculation.GET("", h.CalculationStatus)
			calculation.GET("/plot", h.Plot)
			calculation.GET("/workspace", h.Workspace)
			calculation.GET("/spline", h.SplineCyclegram)
		}

		logs := v1.Group("/logs")
		{
			logs.GET("", h.GetLogs)
			logs.DELETE("", h.ClearLogs)
			logs.GET("/stream", h.StreamLogs)
		}
	}

	return router
}
