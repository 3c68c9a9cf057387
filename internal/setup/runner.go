package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/hbjs97/venvx/internal/cmdexec"
	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/doctor"
)

// Runner는 interactive init의 진입점이다.
type Runner struct {
	ProjectRoot string
	Commander   cmdexec.Commander
	FormRunner  FormRunner
	// SkipShellHook은 테스트용. true면 셸 hook 설치를 생략한다.
	SkipShellHook bool
}

// Run은 init 플로우를 실행한다. manifest가 없으면 최초 설정,
// 있으면 기존 값을 기본값으로 한 수정 플로우다.
func (r *Runner) Run(ctx context.Context) error {
	if config.Exists(r.ProjectRoot) {
		return r.runExisting(ctx)
	}
	return r.runFirstTime(ctx)
}

func (r *Runner) runFirstTime(ctx context.Context) error {
	fmt.Println("venvx 프로젝트 설정을 시작합니다.")

	detected := DetectInterpreters(ctx, r.Commander)
	python, err := r.FormRunner.RunPythonSelect(detected)
	if err != nil {
		return err
	}

	defaults := config.Default()
	input, err := r.FormRunner.RunProjectForm(&ProjectInput{
		EnvDir:       defaults.EnvDir,
		Python:       python,
		Requirements: defaults.Requirements,
		Entry:        defaults.Entry,
	})
	if err != nil {
		return err
	}
	input.Python = python

	if err := r.save(input); err != nil {
		return err
	}
	fmt.Printf("manifest가 저장되었습니다: %s\n", config.Path(r.ProjectRoot))

	r.installShellHook()
	r.runDoctor(ctx, input)
	fmt.Println("venvx install로 가상환경을 준비하세요.")
	return nil
}

// runExisting는 기존 manifest가 있을 때의 수정 플로우다.
func (r *Runner) runExisting(ctx context.Context) error {
	cfg, err := config.Load(r.ProjectRoot)
	if err != nil {
		return err
	}

	fmt.Printf("기존 manifest: %s\n", config.Path(r.ProjectRoot))
	fmt.Printf("  python:       %s\n", cfg.Python)
	fmt.Printf("  entry:        %s\n", cfg.Entry)
	fmt.Printf("  env_dir:      %s\n", cfg.EnvDir)
	fmt.Printf("  requirements: %s\n", cfg.Requirements)

	confirmed, err := r.FormRunner.RunConfirm("manifest를 수정하시겠습니까?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("수정이 취소되었습니다.")
		return nil
	}

	detected := DetectInterpreters(ctx, r.Commander)
	python, err := r.FormRunner.RunPythonSelect(detected)
	if err != nil {
		return err
	}

	input, err := r.FormRunner.RunProjectForm(&ProjectInput{
		EnvDir:       cfg.EnvDir,
		Python:       python,
		Requirements: cfg.Requirements,
		Entry:        cfg.Entry,
	})
	if err != nil {
		return err
	}
	input.Python = python

	if err := r.save(input); err != nil {
		return err
	}

	r.runDoctor(ctx, input)
	return nil
}

func (r *Runner) save(input *ProjectInput) error {
	return config.Save(r.ProjectRoot, &config.Config{
		Version:      1,
		EnvDir:       input.EnvDir,
		Python:       input.Python,
		Requirements: input.Requirements,
		Entry:        input.Entry,
	})
}

func (r *Runner) installShellHook() {
	if r.SkipShellHook {
		return
	}
	shellType := DetectShell()
	if shellType == "" {
		return
	}
	rcPath := ShellRCPath(shellType)
	if rcPath == "" {
		return
	}
	if err := InstallShellHook(shellType, rcPath); err != nil {
		fmt.Fprintf(os.Stderr, "경고: 셸 hook 설치 실패: %v\n", err)
		return
	}
	fmt.Printf("셸 hook이 설치되었습니다: %s\n", rcPath)
}

// runDoctor는 설정 완료 후 환경 진단을 실행한다.
func (r *Runner) runDoctor(ctx context.Context, input *ProjectInput) {
	fmt.Println("\n환경 진단 실행 중...")
	results := doctor.RunAll(ctx, r.Commander, r.ProjectRoot, input.EnvDir, input.Python)
	for _, res := range results {
		icon := "✓"
		if res.Status == doctor.StatusFail {
			icon = "✗"
		} else if res.Status == doctor.StatusWarn {
			icon = "!"
		}
		fmt.Printf("  [%s] %s: %s\n", icon, res.Name, res.Message)
		if res.Fix != "" {
			fmt.Printf("      Fix: %s\n", res.Fix)
		}
	}
}
