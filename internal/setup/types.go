package setup

// ProjectInput은 manifest 생성/수정 시 사용자 입력 값이다.
type ProjectInput struct {
	EnvDir       string
	Python       string
	Requirements string
	Entry        string
}

// Interpreter는 PATH에서 감지된 Python 인터프리터다.
type Interpreter struct {
	// Name은 실행 파일 이름이다 (예: "python3.12").
	Name string
	// Version은 --version 출력이다 (예: "Python 3.12.4").
	Version string
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunProjectForm은 프로젝트 설정 입력 폼을 실행한다.
	// defaults가 nil이 아니면 기존 값을 기본값으로 표시한다 (수정 모드).
	RunProjectForm(defaults *ProjectInput) (*ProjectInput, error)

	// RunPythonSelect는 감지된 인터프리터 목록에서 선택 UI를 표시한다.
	// detected가 비어있으면 직접 입력 폼으로 fallback한다.
	RunPythonSelect(detected []Interpreter) (string, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
