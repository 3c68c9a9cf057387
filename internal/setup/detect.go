package setup

import (
	"context"
	"strings"

	"github.com/hbjs97/venvx/internal/cmdexec"
)

// detectCandidates는 감지를 시도하는 관례적 인터프리터 이름이다.
var detectCandidates = []string{
	"python3",
	"python3.13",
	"python3.12",
	"python3.11",
	"python3.10",
	"python",
}

// DetectInterpreters는 PATH에서 사용 가능한 인터프리터 목록을 수집한다.
// 같은 버전을 가리키는 이름은 하나만 남긴다. 실패는 차단하지 않는다.
func DetectInterpreters(ctx context.Context, cmd cmdexec.Commander) []Interpreter {
	var found []Interpreter
	seen := make(map[string]bool)

	for _, name := range detectCandidates {
		out, err := cmd.Run(ctx, name, "--version")
		if err != nil {
			continue
		}
		version := strings.TrimSpace(string(out))
		if version == "" || seen[version] {
			continue
		}
		seen[version] = true
		found = append(found, Interpreter{Name: name, Version: version})
	}

	return found
}
