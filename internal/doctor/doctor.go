package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/venvx/internal/activator"
	"github.com/hbjs97/venvx/internal/cmdexec"
	"github.com/hbjs97/venvx/internal/python"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckInterpreter는 설정된 인터프리터와 pip 모듈 존재 여부를 확인한다.
func CheckInterpreter(ctx context.Context, cmd cmdexec.Commander, interpreter string) []DiagResult {
	var results []DiagResult

	out, err := cmd.Run(ctx, interpreter, "--version")
	if err != nil {
		results = append(results, DiagResult{
			Name:    interpreter,
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", interpreter),
			Fix:     "설치: https://www.python.org/downloads/",
		})
		return results
	}
	results = append(results, DiagResult{
		Name:    interpreter,
		Status:  StatusOK,
		Message: strings.TrimSpace(string(out)),
	})

	out, err = cmd.Run(ctx, interpreter, "-m", "pip", "--version")
	if err != nil {
		results = append(results, DiagResult{
			Name:    "pip",
			Status:  StatusFail,
			Message: "pip 모듈 없음",
			Fix:     fmt.Sprintf("%s -m ensurepip --upgrade 실행", interpreter),
		})
	} else {
		results = append(results, DiagResult{
			Name:    "pip",
			Status:  StatusOK,
			Message: strings.TrimSpace(string(out)),
		})
	}
	return results
}

// CheckEnvDir는 가상환경 디렉토리의 무결성을 확인한다.
// 디렉토리 자체는 외부 도구가 만든 불투명한 상태로 취급하고,
// activate 스크립트와 인터프리터 존재 여부만 본다.
func CheckEnvDir(projectRoot, envDirName string) DiagResult {
	envDir := filepath.Join(projectRoot, envDirName)
	info, err := os.Stat(envDir)
	if err != nil || !info.IsDir() {
		return DiagResult{
			Name:    "env_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("가상환경 없음: %s", envDir),
			Fix:     "venvx install 실행",
		}
	}

	if _, ok := python.InterpreterPath(envDir); !ok {
		return DiagResult{
			Name:    "env_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("가상환경 손상: 인터프리터 없음: %s", envDir),
			Fix:     "가상환경을 삭제하고 venvx install 재실행",
		}
	}

	return DiagResult{
		Name:    "env_dir",
		Status:  StatusOK,
		Message: fmt.Sprintf("가상환경 정상: %s", envDir),
	}
}

// CheckEnvInterference는 가상환경 해석을 방해하는 환경변수를 확인한다.
// PYTHONHOME/PYTHONPATH가 설정되어 있으면 가상환경의 패키지 해석이 무시될 수 있다.
func CheckEnvInterference() []DiagResult {
	var results []DiagResult
	for _, key := range []string{"PYTHONHOME", "PYTHONPATH"} {
		if os.Getenv(key) != "" {
			results = append(results, DiagResult{
				Name:    "env_" + strings.ToLower(key),
				Status:  StatusWarn,
				Message: fmt.Sprintf("환경변수 %s 설정됨 — 가상환경 해석이 무시될 수 있음", key),
				Fix:     fmt.Sprintf("unset %s", key),
			})
		}
	}
	if len(results) == 0 {
		results = append(results, DiagResult{
			Name:    "env_interference",
			Status:  StatusOK,
			Message: "간섭 환경변수 없음",
		})
	}
	return results
}

// CheckMarker는 마커가 다른 프로젝트의 가상환경을 가리키는지 확인한다.
func CheckMarker(marker, projectRoot, envDirName string) DiagResult {
	if marker == "" {
		return DiagResult{
			Name:    "marker",
			Status:  StatusOK,
			Message: "활성화된 가상환경 없음",
		}
	}

	envDir := filepath.Join(projectRoot, envDirName)
	abs, err := filepath.Abs(envDir)
	if err == nil && filepath.Clean(marker) == filepath.Clean(abs) {
		return DiagResult{
			Name:    "marker",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s == %s", activator.MarkerVar, marker),
		}
	}

	return DiagResult{
		Name:    "marker",
		Status:  StatusWarn,
		Message: fmt.Sprintf("다른 가상환경이 활성화됨: %s", marker),
		Fix:     `eval "$(venvx activate)" 로 전환`,
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, projectRoot, envDirName, interpreter string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckInterpreter(ctx, cmd, interpreter)...)
	results = append(results, CheckEnvDir(projectRoot, envDirName))
	results = append(results, CheckEnvInterference()...)
	results = append(results, CheckMarker(os.Getenv(activator.MarkerVar), projectRoot, envDirName))
	return results
}
