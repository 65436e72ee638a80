package bootstrap

import (
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/infra/db"
	"github.com/taskdeck/taskdeck/internal/infra/httpclient"
	"github.com/taskdeck/taskdeck/internal/infra/logger"
	"github.com/taskdeck/taskdeck/internal/modules/handler"
	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/repo"
	"github.com/taskdeck/taskdeck/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.User{},
				&model.Project{},
				&model.ProjectRole{},
				&model.Task{},
				&model.TaskGroup{},
				&model.TaskGroupMembership{},
				&model.TaskRun{},
				&model.TaskMessage{},
			)
			if err := db.SeedDefaultUser(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// inference endpoint client
	do.Provide(inj, func(i *do.Injector) (*httpclient.OllamaClient, error) {
		return httpclient.NewOllamaClient(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.RoleRepo, error) {
		return repo.NewRoleRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.GroupRepo, error) {
		return repo.NewGroupRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.RunRepo, error) {
		return repo.NewRunRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MessageRepo, error) {
		return repo.NewMessageRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskCodeRepo, error) {
		return repo.NewTaskCodeRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.RoleService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewRoleService(
			do.MustInvoke[repo.RoleRepo](i),
			model.Role(cfg.Auth.DefaultRole),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(do.MustInvoke[repo.TaskRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.GroupService, error) {
		return service.NewGroupService(do.MustInvoke[repo.GroupRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.RunService, error) {
		return service.NewRunService(
			do.MustInvoke[repo.RunRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MessageService, error) {
		return service.NewMessageService(
			do.MustInvoke[repo.MessageRepo](i),
			do.MustInvoke[repo.RunRepo](i),
			do.MustInvoke[*httpclient.OllamaClient](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskCodeService, error) {
		return service.NewTaskCodeService(
			do.MustInvoke[repo.TaskCodeRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.GroupHandler, error) {
		return handler.NewGroupHandler(do.MustInvoke[service.GroupService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.RunHandler, error) {
		return handler.NewRunHandler(do.MustInvoke[service.RunService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MessageHandler, error) {
		return handler.NewMessageHandler(do.MustInvoke[service.MessageService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskCodeHandler, error) {
		return handler.NewTaskCodeHandler(do.MustInvoke[service.TaskCodeService](i)), nil
	})

	return inj
}
