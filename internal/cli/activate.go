package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/venvx/internal/activator"
	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newActivateCmd() *cobra.Command {
	var shellType string
	var hookOnly bool

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "현재 프로젝트의 가상환경을 활성화한다",
		Long: `현재 프로젝트의 가상환경 활성화 명령을 stdout으로 출력한다.
셸에서 eval "$(venvx activate)" 형태로 사용한다. 같은 가상환경이
이미 활성화되어 있으면 아무것도 출력하지 않는다 (멱등).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hookOnly {
				fmt.Fprint(cmd.OutOrStdout(), shell.HookSnippet(shellType))
				return nil
			}
			return a.runActivate(cmd.OutOrStdout(), shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "zsh", "셸 유형 (bash, zsh, fish)")
	cmd.Flags().BoolVar(&hookOnly, "hook", false, "hook 스니펫만 출력")
	return cmd
}

func (a *App) runActivate(w io.Writer, shellType string) error {
	root, err := a.projectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	// 자기 프로세스 환경은 건드리지 않고 snapshot 위에서 변경을 계산한다.
	env := activator.SnapshotEnv("PATH", activator.MarkerVar)
	act, err := (&activator.Activator{EnvDirName: cfg.EnvDir}).EnsureActive(root, env)
	if err != nil {
		return err
	}

	// stdout은 eval 대상이므로 shell 코드만 내보낸다
	fmt.Fprint(w, shell.Activate(act, shellType))

	if a.Verbose {
		fmt.Fprintf(os.Stderr, "활성화 판정: %s (%s)\n", act.Result, act.EnvDir)
	}
	return nil
}
