package cli

// ExitCode는 venvx의 종료 코드다. 성공은 0, 모든 실패는 1이다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitFailure는 실패 종료다. 가상환경 없음, activate 스크립트 없음,
	// entry 파일 없음, 위임 명령 실패 모두 여기에 해당한다.
	ExitFailure ExitCode = 1
)

// MapExitCode는 에러 유무를 종료 코드로 변환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
