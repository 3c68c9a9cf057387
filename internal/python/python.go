package python

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/venvx/internal/cmdexec"
)

// ErrCommandFailed는 위임한 외부 명령(인터프리터/패키지 매니저)이
// 0이 아닌 코드로 종료했을 때 반환된다.
var ErrCommandFailed = errors.New("외부 명령 실패")

// interpreterCandidates는 가상환경 내부 인터프리터 후보 경로다.
// activate 스크립트와 같은 순서로 POSIX 레이아웃을 먼저 시도한다.
var interpreterCandidates = []string{
	filepath.Join("bin", "python"),
	filepath.Join("Scripts", "python.exe"),
}

// Adapter는 python/pip CLI를 Commander를 통해 실행한다.
type Adapter struct {
	cmd cmdexec.Commander
}

// NewAdapter는 새 Python Adapter를 생성한다.
func NewAdapter(cmd cmdexec.Commander) *Adapter {
	return &Adapter{cmd: cmd}
}

// Version은 인터프리터 버전 문자열을 반환한다. 실행 실패는 인터프리터 부재로 본다.
func (a *Adapter) Version(ctx context.Context, python string) (string, error) {
	out, err := a.cmd.Run(ctx, python, "--version")
	if err != nil {
		return "", fmt.Errorf("python.Version: %s: %w", python, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CreateEnv는 python -m venv로 가상환경을 생성한다.
// 생성/검증은 전적으로 외부 도구에 위임한다.
func (a *Adapter) CreateEnv(ctx context.Context, python, envDir string) error {
	out, err := a.cmd.Run(ctx, python, "-m", "venv", envDir)
	if err != nil {
		return fmt.Errorf("python.CreateEnv: %w: %v: %s", ErrCommandFailed, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// InstallRequirements는 가상환경 인터프리터로 pip install -r을 실행한다.
// env에는 활성화가 적용한 환경변수 변경(마커, PATH)을 전달한다.
func (a *Adapter) InstallRequirements(ctx context.Context, env map[string]string, interpreter, requirementsFile string) error {
	out, err := a.cmd.RunWithEnv(ctx, env, interpreter, "-m", "pip", "install", "-r", requirementsFile)
	if err != nil {
		return fmt.Errorf("python.InstallRequirements: %w: %v: %s", ErrCommandFailed, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// RunEntry는 가상환경 인터프리터로 entry 스크립트를 실행한다.
// stdio는 자식 프로세스에 그대로 연결된다.
func (a *Adapter) RunEntry(ctx context.Context, env map[string]string, interpreter, entry string, args ...string) error {
	cmdArgs := append([]string{entry}, args...)
	if err := a.cmd.RunInteractiveWithEnv(ctx, env, interpreter, cmdArgs...); err != nil {
		return fmt.Errorf("python.RunEntry: %w: %v", ErrCommandFailed, err)
	}
	return nil
}

// InterpreterPath는 가상환경 내부 인터프리터 경로를 반환한다.
// 후보 경로를 순서대로 시도하고, 없으면 false를 반환한다.
func InterpreterPath(envDir string) (string, bool) {
	for _, rel := range interpreterCandidates {
		p := filepath.Join(envDir, rel)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// RequirementsHash는 의존성 manifest 내용의 해시를 반환한다.
// manifest를 파싱하지 않는다 — 내용 동일성 판정에만 쓰인다.
func RequirementsHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("python.RequirementsHash: %w", err)
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum[:8]), nil
}
