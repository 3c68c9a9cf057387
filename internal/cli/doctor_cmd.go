package cli

import (
	"context"
	"fmt"

	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "프로젝트 환경을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context())
		},
	}
}

func (a *App) runDoctor(ctx context.Context) error {
	root, err := a.projectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		fmt.Printf("[FAIL] config: %v\n", err)
		fmt.Println("      Fix: venvx init 실행 또는 venvx.toml 확인")
		cfg = config.Default()
	}

	results := doctor.RunAll(ctx, a.Commander, root, cfg.EnvDir, cfg.Python)
	printDiagResults(results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Printf("  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Printf("      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
