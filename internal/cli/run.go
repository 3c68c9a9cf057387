package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/venvx/internal/activator"
	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/python"
	"github.com/spf13/cobra"
)

func (a *App) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [-- args...]",
		Short: "가상환경 안에서 엔트리 스크립트를 실행한다",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRun(cmd.Context(), args)
		},
	}
}

func (a *App) runRun(ctx context.Context, args []string) error {
	root, err := a.projectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	env := activator.SnapshotEnv("PATH", activator.MarkerVar)
	act, err := (&activator.Activator{EnvDirName: cfg.EnvDir}).EnsureActive(root, env)
	if err != nil {
		return err
	}

	entryPath := filepath.Join(root, cfg.Entry)
	if _, err := os.Stat(entryPath); err != nil {
		return fmt.Errorf("cli.run: %s: %w", entryPath, ErrEntryMissing)
	}

	interp, ok := python.InterpreterPath(act.EnvDir)
	if !ok {
		return fmt.Errorf("cli.run: 가상환경 손상: 인터프리터 없음: %s", act.EnvDir)
	}

	py := python.NewAdapter(a.Commander)
	return py.RunEntry(ctx, act.Mutations(), interp, entryPath, args...)
}
