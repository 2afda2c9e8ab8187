//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/jahir07/wp-user-feedback/internal/feedback"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitFeedbackConfig,
		feedback.InitModule,
		InitMetrics,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
