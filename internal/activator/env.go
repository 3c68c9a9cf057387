package activator

import "os"

// Env는 호출 프로세스의 환경변수 테이블 추상화다.
// 프로덕션에서는 OSEnv, activate 출력 계산과 테스트에서는 MapEnv를 사용한다.
type Env interface {
	// Get은 환경변수 값을 반환한다. 없으면 빈 문자열.
	Get(key string) string

	// Set은 환경변수를 설정한다.
	Set(key, value string)
}

// OSEnv는 실제 프로세스 환경변수를 읽고 쓴다.
type OSEnv struct{}

// Get은 os.Getenv를 호출한다.
func (OSEnv) Get(key string) string { return os.Getenv(key) }

// Set은 os.Setenv를 호출한다.
func (OSEnv) Set(key, value string) { _ = os.Setenv(key, value) }

// MapEnv는 맵 기반 Env 구현이다. 프로세스 환경을 건드리지 않고
// 활성화 결과를 계산할 때 사용한다.
type MapEnv struct {
	vals map[string]string
}

// NewMapEnv는 seed 값으로 초기화된 MapEnv를 생성한다. seed는 nil일 수 있다.
func NewMapEnv(seed map[string]string) *MapEnv {
	vals := make(map[string]string, len(seed))
	for k, v := range seed {
		vals[k] = v
	}
	return &MapEnv{vals: vals}
}

// SnapshotEnv는 현재 프로세스의 지정된 키들을 복사한 MapEnv를 생성한다.
func SnapshotEnv(keys ...string) *MapEnv {
	seed := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			seed[k] = v
		}
	}
	return NewMapEnv(seed)
}

// Get은 맵에서 값을 조회한다.
func (m *MapEnv) Get(key string) string { return m.vals[key] }

// Set은 맵에 값을 기록한다.
func (m *MapEnv) Set(key, value string) { m.vals[key] = value }
