package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/venvx/internal/cmdexec"
	"github.com/spf13/cobra"
)

// App은 CLI 명령들이 공유하는 의존성 묶음이다.
type App struct {
	// Commander는 외부 명령 실행 추상화다. 테스트에서는 FakeCommander를 주입한다.
	Commander cmdexec.Commander
	// Dir는 프로젝트 루트다. --dir 플래그로 설정된다.
	Dir string
	// CachePath는 테스트용. 비어있으면 기본 경로(~/.config/venvx/cache.json).
	CachePath string
	// Verbose는 --verbose 플래그 값이다.
	Verbose bool
}

// NewRootCmd는 venvx CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "venvx",
		Short:        "Python 프로젝트 가상환경 부트스트랩 도구",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&a.Dir, "dir", "C", ".", "프로젝트 루트 경로")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "상세 출력")

	cmd.AddCommand(
		a.newInitCmd(),
		a.newInstallCmd(),
		a.newActivateCmd(),
		a.newRunCmd(),
		a.newStatusCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

// projectRoot는 --dir를 정규화된 절대 경로로 반환한다. 읽을 수 없으면 에러다.
func (a *App) projectRoot() (string, error) {
	abs, err := filepath.Abs(a.Dir)
	if err != nil {
		return "", fmt.Errorf("cli.projectRoot: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("cli.projectRoot: 프로젝트 루트를 읽을 수 없습니다: %s", abs)
	}
	return filepath.Clean(abs), nil
}

func (a *App) cachePath() string {
	if a.CachePath != "" {
		return a.CachePath
	}
	return filepath.Join(homeDir(), ".config", "venvx", "cache.json")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
