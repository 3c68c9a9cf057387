package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/venvx/internal/activator"
	"github.com/hbjs97/venvx/internal/cache"
	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/python"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "프로젝트의 가상환경 상태를 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus()
		},
	}
}

func (a *App) runStatus() error {
	root, err := a.projectRoot()
	if err != nil {
		return err
	}

	if !config.Exists(root) {
		fmt.Println("venvx 설정이 없습니다. 'venvx init'을 실행하세요.")
		return nil
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	fmt.Printf("프로젝트: %s\n", root)
	fmt.Printf("  env dir:      %s\n", cfg.EnvDir)
	fmt.Printf("  python:       %s\n", cfg.Python)
	fmt.Printf("  requirements: %s\n", cfg.Requirements)
	fmt.Printf("  entry:        %s\n", cfg.Entry)

	envDir := filepath.Join(root, cfg.EnvDir)
	if _, err := os.Stat(envDir); err != nil {
		fmt.Println("  env:          없음 — 'venvx install'을 실행하세요.")
		return nil
	}
	if interp, ok := python.InterpreterPath(envDir); ok {
		fmt.Printf("  env:          준비됨 (%s)\n", interp)
	} else {
		fmt.Println("  env:          손상 — 인터프리터 없음")
	}

	// 마커 변수를 기준으로 활성 상태를 판정한다
	marker := os.Getenv(activator.MarkerVar)
	switch {
	case marker == "":
		fmt.Println("  활성 상태:    비활성")
	case sameDir(marker, envDir):
		fmt.Println("  활성 상태:    이 프로젝트 활성")
	default:
		fmt.Printf("  활성 상태:    다른 환경 활성 (%s)\n", marker)
	}

	c, err := cache.Load(a.cachePath())
	if err == nil {
		if entry, ok := c.Get(root); ok {
			fmt.Printf("  마지막 설치:  %s (%s)\n", entry.InstalledAt, entry.Python)
		}
	}
	return nil
}

func sameDir(a, b string) bool {
	ra, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	rb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return filepath.Clean(ra) == filepath.Clean(rb)
}
