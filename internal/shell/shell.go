package shell

import (
	"fmt"
	"strings"

	"github.com/hbjs97/venvx/internal/activator"
)

// Activate는 활성화가 적용한 환경변수 변경을 shell 명령으로 렌더링한다.
// AlreadyActive처럼 변경이 없으면 빈 문자열을 반환한다.
func Activate(act *activator.Activation, shellType string) string {
	if len(act.Vars) == 0 {
		return ""
	}

	var b strings.Builder
	for _, v := range act.Vars {
		switch shellType {
		case "fish":
			fmt.Fprintf(&b, "set -gx %s %q\n", v.Key, v.Value)
		default: // bash, zsh, sh
			fmt.Fprintf(&b, "export %s=%q\n", v.Key, v.Value)
		}
	}
	return b.String()
}

// Deactivate는 마커 해제를 위한 shell 명령을 생성한다.
// PATH 복원은 가상환경 자체의 deactivate 함수 몫이다.
func Deactivate(shellType string) string {
	switch shellType {
	case "fish":
		return "set -e VIRTUAL_ENV\n"
	default:
		return "unset VIRTUAL_ENV\n"
	}
}

// HookSnippet는 셸 디렉토리 변경 hook 스니펫을 반환한다.
func HookSnippet(shellType string) string {
	switch shellType {
	case "zsh":
		return `# venvx shell integration (zsh)
_venvx_chpwd() {
  eval "$(venvx activate --shell zsh 2>/dev/null)"
}
chpwd_functions+=(_venvx_chpwd)
`
	case "bash":
		return `# venvx shell integration (bash)
_venvx_prompt_command() {
  eval "$(venvx activate --shell bash 2>/dev/null)"
}
PROMPT_COMMAND="_venvx_prompt_command;${PROMPT_COMMAND}"
`
	case "fish":
		return `# venvx shell integration (fish)
function _venvx_chpwd --on-variable PWD
  eval (venvx activate --shell fish 2>/dev/null)
end
`
	default:
		return ""
	}
}
