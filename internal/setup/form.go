package setup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunProjectForm은 프로젝트 설정 입력 폼을 실행한다.
func (h *HuhFormRunner) RunProjectForm(defaults *ProjectInput) (*ProjectInput, error) {
	input := &ProjectInput{}
	if defaults != nil {
		*input = *defaults
	}

	envDirValidate := func(s string) error {
		if s == "" {
			return fmt.Errorf("가상환경 디렉토리 이름을 입력하세요")
		}
		if filepath.IsAbs(s) {
			return fmt.Errorf("프로젝트 내부의 상대 경로만 사용 가능합니다")
		}
		for _, seg := range strings.Split(filepath.ToSlash(s), "/") {
			if seg == ".." {
				return fmt.Errorf("프로젝트 내부의 상대 경로만 사용 가능합니다")
			}
		}
		return nil
	}

	entryValidate := func(s string) error {
		if s == "" {
			return fmt.Errorf("entry 파일을 입력하세요")
		}
		return nil
	}

	fields := []huh.Field{
		huh.NewInput().Title("entry 파일").Value(&input.Entry).Validate(entryValidate),
		huh.NewInput().Title("의존성 manifest").Value(&input.Requirements).Validate(huh.ValidateNotEmpty()),
		huh.NewInput().Title("가상환경 디렉토리").Value(&input.EnvDir).Validate(envDirValidate),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunProjectForm: %w", err)
	}

	return input, nil
}

// RunPythonSelect는 감지된 인터프리터 목록에서 선택 UI를 표시한다.
func (h *HuhFormRunner) RunPythonSelect(detected []Interpreter) (string, error) {
	if len(detected) == 0 {
		var python string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Python 인터프리터 (감지 실패 — 직접 입력)").
				Value(&python).
				Validate(huh.ValidateNotEmpty()),
		))
		if err := form.Run(); err != nil {
			return "", fmt.Errorf("setup.RunPythonSelect: %w", err)
		}
		return python, nil
	}

	options := make([]huh.Option[string], 0, len(detected))
	for _, it := range detected {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", it.Name, it.Version), it.Name))
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Python 인터프리터를 선택하세요").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunPythonSelect: %w", err)
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirmed, nil
}
