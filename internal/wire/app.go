package wire

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/viper"

	"github.com/mithrel/minid/internal/config"
	"github.com/mithrel/minid/internal/db"
	"github.com/mithrel/minid/pkg/minid"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg *viper.Viper
	Log *slog.Logger
	Gen *minid.Generator

	storeOnce sync.Once
	store     db.Store
	storeErr  error
}

// BuildApp wires dependencies with the provided config. Logs go to stderr.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	return BuildAppWithLog(ctx, v, os.Stderr)
}

// BuildAppWithLog is BuildApp with an explicit log destination.
func BuildAppWithLog(ctx context.Context, v *viper.Viper, logOut io.Writer) (*App, error) {
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: parseLevel(v.GetString("log.level"))}))
	return &App{
		Cfg: v,
		Log: logger,
		Gen: minid.NewGenerator(),
	}, nil
}

// Store opens the registry on first use so commands that never touch it do
// not create the data directory.
func (a *App) Store(ctx context.Context) (db.Store, error) {
	a.storeOnce.Do(func() {
		path := config.ResolveDBPath(a.Cfg)
		a.Log.Debug("opening registry", "path", path)
		a.store, a.storeErr = db.Open(ctx, "sqlite://"+path)
	})
	return a.store, a.storeErr
}

// Close releases the registry if it was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return l
}
