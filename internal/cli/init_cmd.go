package cli

import (
	"github.com/hbjs97/venvx/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var noHook bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "대화형으로 프로젝트 설정을 시작한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.projectRoot()
			if err != nil {
				return err
			}
			r := &setup.Runner{
				ProjectRoot:   root,
				Commander:     a.Commander,
				FormRunner:    &setup.HuhFormRunner{},
				SkipShellHook: noHook,
			}
			return r.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&noHook, "no-hook", false, "셸 rc에 hook을 설치하지 않는다")
	return cmd
}
