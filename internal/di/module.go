package di

import (
	"go.uber.org/fx"

	"github.com/shopcore/adminapi/internal/app"
	"github.com/shopcore/adminapi/internal/config"
	"github.com/shopcore/adminapi/internal/logger"
	"github.com/shopcore/adminapi/internal/pkg/auth"
	"github.com/shopcore/adminapi/internal/server/http/handlers"
	"github.com/shopcore/adminapi/internal/server/http/router"
	"github.com/shopcore/adminapi/internal/storage/postgres"
	"github.com/shopcore/adminapi/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.PlatformFacade) handlers.PlatformFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
