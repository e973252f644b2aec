package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wanderplan/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB, provideLogger),
	fx.Invoke(infra.Migrate),
)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
