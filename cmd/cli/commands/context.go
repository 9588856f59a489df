package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/centroops/guardia/internal/config"
	"github.com/centroops/guardia/pkg/db"
)

// AppContext holds the application dependencies shared by all commands.
type AppContext struct {
	Cfg    *config.Config
	Store  db.StateStore
	Logger *zap.Logger
	Ctx    context.Context
}
