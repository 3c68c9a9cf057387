package activator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrEnvMissing는 가상환경 디렉토리가 없을 때 반환된다. venvx install 필요.
var ErrEnvMissing = errors.New("가상환경 없음, venvx install 필요")

// ErrDescriptorMissing는 가상환경은 있으나 activate 스크립트가 없을 때 반환된다.
var ErrDescriptorMissing = errors.New("activate 스크립트 없음, 가상환경 손상")

// MarkerVar는 활성 가상환경을 가리키는 마커 환경변수다.
const MarkerVar = "VIRTUAL_ENV"

// DefaultEnvDir는 기본 가상환경 디렉토리 이름이다.
const DefaultEnvDir = ".venv"

// descriptorCandidates는 activate 스크립트 후보 경로다.
// POSIX 레이아웃을 먼저, Windows 레이아웃을 나중에 순서대로 시도한다.
var descriptorCandidates = []string{
	filepath.Join("bin", "activate"),
	filepath.Join("Scripts", "activate"),
}

// Result는 EnsureActive의 판정 결과다.
type Result string

const (
	// Activated는 마커가 없던 상태에서 새로 활성화됐음을 나타낸다.
	Activated Result = "activated"
	// AlreadyActive는 같은 가상환경이 이미 활성화되어 있어 아무 변경도 없음을 나타낸다.
	AlreadyActive Result = "already_active"
	// Switched는 다른 가상환경이 활성화되어 있어 덮어썼음을 나타낸다.
	Switched Result = "switched"
)

// EnvVar는 활성화가 적용한 하나의 환경변수 변경이다.
type EnvVar struct {
	Key   string
	Value string
}

// Activation은 활성화 결과와 적용된 변경 목록이다.
type Activation struct {
	Result Result
	// EnvDir는 정규화된 가상환경 절대 경로다.
	EnvDir string
	// BinDir는 activate 스크립트가 위치한 디렉토리다. AlreadyActive면 빈 문자열.
	BinDir string
	// Vars는 적용된 환경변수 변경 목록이다 (적용 순서대로). AlreadyActive면 비어있다.
	Vars []EnvVar
}

// Mutations는 적용된 변경을 맵으로 반환한다. Commander의 env overlay로 쓰인다.
func (a *Activation) Mutations() map[string]string {
	if len(a.Vars) == 0 {
		return nil
	}
	m := make(map[string]string, len(a.Vars))
	for _, v := range a.Vars {
		m[v.Key] = v.Value
	}
	return m
}

// Activator는 가상환경 활성화 루틴이다. zero value로 사용 가능하다.
type Activator struct {
	// EnvDirName은 프로젝트 루트 기준 가상환경 디렉토리 이름이다. 비어있으면 .venv.
	EnvDirName string
	// GOOS는 테스트용. 비어있으면 runtime.GOOS.
	GOOS string
}

// EnsureActive는 projectRoot의 가상환경이 env에서 활성화된 상태임을 보장한다.
// 같은 환경이 이미 활성화되어 있으면 아무것도 변경하지 않는다 (멱등).
// 다른 환경이 활성화되어 있으면 마커를 덮어쓰고 Switched를 반환한다.
func (a *Activator) EnsureActive(projectRoot string, env Env) (*Activation, error) {
	envDir := filepath.Join(projectRoot, a.envDirName())
	info, err := os.Stat(envDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("activator.EnsureActive: %s: %w", envDir, ErrEnvMissing)
	}
	normDir := normalize(envDir)

	marker := env.Get(MarkerVar)
	if marker != "" && normalize(marker) == normDir {
		return &Activation{Result: AlreadyActive, EnvDir: normDir}, nil
	}

	binDir, err := findDescriptor(envDir)
	if err != nil {
		return nil, err
	}

	result := Activated
	if marker != "" {
		result = Switched
	}
	act := &Activation{Result: result, EnvDir: normDir, BinDir: binDir}
	act.apply(env, a.goos())
	return act, nil
}

// findDescriptor는 후보 경로를 순서대로 시도하여 activate 스크립트의
// 디렉토리를 반환한다.
func findDescriptor(envDir string) (string, error) {
	for _, rel := range descriptorCandidates {
		p := filepath.Join(envDir, rel)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return filepath.Dir(p), nil
		}
	}
	return "", fmt.Errorf("activator.EnsureActive: %s: %w", envDir, ErrDescriptorMissing)
}

// apply는 활성화 변경을 env에 기록한다. 인터프리터 탐색 경로와 마커를 설정하고,
// Windows 계열에서는 인코딩 플래그를 무조건 함께 설정한다.
func (a *Activation) apply(env Env, goos string) {
	path := a.BinDir
	if old := env.Get("PATH"); old != "" {
		path = a.BinDir + string(os.PathListSeparator) + old
	}

	vars := []EnvVar{
		{Key: MarkerVar, Value: a.EnvDir},
		{Key: "PATH", Value: path},
	}
	if goos == "windows" {
		vars = append(vars,
			EnvVar{Key: "PYTHONIOENCODING", Value: "utf-8"},
			EnvVar{Key: "PYTHONUTF8", Value: "1"},
		)
	}

	for _, v := range vars {
		env.Set(v.Key, v.Value)
	}
	a.Vars = vars
}

func (a *Activator) envDirName() string {
	if a.EnvDirName != "" {
		return a.EnvDirName
	}
	return DefaultEnvDir
}

func (a *Activator) goos() string {
	if a.GOOS != "" {
		return a.GOOS
	}
	return runtime.GOOS
}

// normalize는 경로를 절대 경로로 정규화한다. 마커 비교에 사용한다.
func normalize(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return filepath.Clean(abs)
}
