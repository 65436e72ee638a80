package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/taskdeck/taskdeck/docs"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/middleware"
	"github.com/taskdeck/taskdeck/internal/modules/handler"
	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/serializer"
	"github.com/taskdeck/taskdeck/internal/modules/service"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	Roles           service.RoleService
	ProjectHandler  *handler.ProjectHandler
	TaskHandler     *handler.TaskHandler
	GroupHandler    *handler.GroupHandler
	RunHandler      *handler.RunHandler
	MessageHandler  *handler.MessageHandler
	TaskCodeHandler *handler.TaskCodeHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.CurrentUser(d.Config))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	operator := middleware.RequireProjectRole(d.Roles, model.RoleOperator)
	maintainer := middleware.RequireProjectRole(d.Roles, model.RoleMaintainer)
	owner := middleware.RequireProjectRole(d.Roles, model.RoleOwner)

	project := r.Group("/projects")
	{
		project.GET("", d.ProjectHandler.GetProjects)
		project.POST("", d.ProjectHandler.CreateProject)

		project.GET("/:id", d.ProjectHandler.GetProject)
		project.PUT("/:id", maintainer, d.ProjectHandler.UpdateProject)
		project.DELETE("/:id", owner, d.ProjectHandler.DeleteProject)

		project.GET("/:id/tasks", d.TaskHandler.GetTasks)
		project.POST("/:id/tasks", maintainer, d.TaskHandler.CreateTask)
		project.GET("/:id/tasks/:tid", d.TaskHandler.GetTask)
		project.PUT("/:id/tasks/:tid", maintainer, d.TaskHandler.UpdateTask)
		project.DELETE("/:id/tasks/:tid", maintainer, d.TaskHandler.DeleteTask)

		project.GET("/:id/groups", d.GroupHandler.GetGroups)
		project.POST("/:id/groups", maintainer, d.GroupHandler.CreateGroup)
		project.PUT("/:id/groups/:gid", maintainer, d.GroupHandler.UpdateGroup)
		project.DELETE("/:id/groups/:gid", maintainer, d.GroupHandler.DeleteGroup)
		project.POST("/:id/groups/:gid/tasks", maintainer, d.GroupHandler.AssignTasks)
		project.DELETE("/:id/groups/:gid/tasks/:tid", maintainer, d.GroupHandler.RemoveTask)

		project.GET("/:id/runs", d.RunHandler.GetRuns)
		project.POST("/:id/runs/tasks/:tid/start", operator, d.RunHandler.StartRun)
		project.PUT("/:id/runs/:rid", operator, d.RunHandler.UpdateRun)

		project.GET("/:id/tasks-as-code", d.TaskCodeHandler.ExportTaskCode)
		project.PUT("/:id/tasks-as-code", maintainer, d.TaskCodeHandler.ApplyTaskCode)
	}

	run := r.Group("/runs")
	{
		run.GET("/:rid/messages", d.MessageHandler.GetMessages)
		run.POST("/:rid/messages", d.MessageHandler.PostMessage)
	}

	return r
}
