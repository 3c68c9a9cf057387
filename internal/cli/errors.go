package cli

import (
	"errors"

	"github.com/hbjs97/venvx/internal/activator"
	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/python"
	"github.com/hbjs97/venvx/internal/resolver"
)

// ErrEntryMissing는 entry 파일이 없을 때의 sentinel error다.
var ErrEntryMissing = errors.New("entry 파일 없음")

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrEnvMissing는 가상환경 디렉토리가 없을 때의 sentinel error다.
	ErrEnvMissing = activator.ErrEnvMissing
	// ErrDescriptorMissing는 activate 스크립트가 없을 때의 sentinel error다.
	ErrDescriptorMissing = activator.ErrDescriptorMissing
	// ErrCommandFailed는 위임한 외부 명령이 실패했을 때의 sentinel error다.
	ErrCommandFailed = python.ErrCommandFailed
	// ErrNoInterpreter는 사용 가능한 인터프리터가 없을 때의 sentinel error다.
	ErrNoInterpreter = resolver.ErrNoInterpreter
	// ErrConfig는 manifest 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
