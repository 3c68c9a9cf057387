package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hbjs97/venvx/internal/activator"
	"github.com/hbjs97/venvx/internal/cache"
	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/python"
	"github.com/hbjs97/venvx/internal/resolver"
	"github.com/spf13/cobra"
)

func (a *App) newInstallCmd() *cobra.Command {
	var pythonFlag string
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "가상환경을 준비하고 의존성을 설치한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInstall(cmd.Context(), pythonFlag, force)
		},
	}
	cmd.Flags().StringVarP(&pythonFlag, "python", "p", "", "사용할 인터프리터 이름")
	cmd.Flags().BoolVar(&force, "force", false, "캐시를 무시하고 의존성을 재설치")
	return cmd
}

func (a *App) runInstall(ctx context.Context, pythonFlag string, force bool) error {
	root, err := a.projectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	c, err := cache.Load(a.cachePath())
	if err != nil {
		c = cache.New() // 캐시 로드 실패 시 빈 캐시 사용
	}
	py := python.NewAdapter(a.Commander)

	r := resolver.New(cfg, c, py)
	result, err := r.Resolve(ctx, root, pythonFlag)
	if err != nil {
		return err
	}
	if a.Verbose {
		fmt.Fprintf(os.Stderr, "인터프리터: %s — %s (판정: %s)\n", result.Python, result.Version, result.Reason)
	}

	// 가상환경이 없으면 생성한다. 생성은 전적으로 외부 도구에 위임한다.
	envDir := filepath.Join(root, cfg.EnvDir)
	created := false
	if _, err := os.Stat(envDir); os.IsNotExist(err) {
		fmt.Printf("가상환경 생성: %s\n", envDir)
		if err := py.CreateEnv(ctx, result.Python, envDir); err != nil {
			return err
		}
		created = true
	}

	env := activator.SnapshotEnv("PATH", activator.MarkerVar)
	act, err := (&activator.Activator{EnvDirName: cfg.EnvDir}).EnsureActive(root, env)
	if err != nil {
		return err
	}

	reqPath := filepath.Join(root, cfg.Requirements)
	reqHash, err := python.RequirementsHash(reqPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: %s 없음 — 의존성 설치를 건너뜁니다\n", cfg.Requirements)
		fmt.Printf("준비 완료: %s\n", act.EnvDir)
		return nil
	}

	// 방금 생성한 빈 환경은 이전 설치의 캐시가 남아 있어도 설치가 필요하다
	if force || created {
		c.Invalidate(root)
	}
	if _, ok := c.Lookup(root, reqHash, cfg.CacheTTLDays); ok {
		fmt.Printf("의존성 변경 없음 — 설치 생략 (%s)\n", cfg.Requirements)
		return nil
	}

	interp, ok := python.InterpreterPath(act.EnvDir)
	if !ok {
		return fmt.Errorf("cli.install: 가상환경 손상: 인터프리터 없음: %s", act.EnvDir)
	}

	if a.Verbose {
		if idx := os.Getenv("PIP_INDEX_URL"); idx != "" {
			fmt.Fprintf(os.Stderr, "PIP_INDEX_URL: %s\n", MaskCredentials(idx))
		}
	}

	fmt.Printf("의존성 설치: %s\n", cfg.Requirements)
	if err := py.InstallRequirements(ctx, act.Mutations(), interp, reqPath); err != nil {
		return err
	}

	c.Set(root, cache.Entry{
		RequirementsHash: reqHash,
		Python:           result.Python,
		InstalledAt:      time.Now().Format(time.RFC3339),
	})
	_ = c.Save(a.cachePath()) // 캐시 저장 실패는 치명적이지 않음

	fmt.Printf("설치 완료: %s\n", act.EnvDir)
	return nil
}
