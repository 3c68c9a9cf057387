package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbjs97/venvx/internal/cache"
	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/python"
)

// ErrNoInterpreter는 사용 가능한 Python 인터프리터를 찾지 못했을 때 반환된다.
var ErrNoInterpreter = errors.New("사용 가능한 Python 인터프리터 없음")

// probeCandidates는 PATH에서 순서대로 탐색하는 관례적 인터프리터 이름이다.
var probeCandidates = []string{
	"python3",
	"python3.13",
	"python3.12",
	"python3.11",
	"python3.10",
	"python",
}

// Result는 Resolver의 판정 결과다.
type Result struct {
	Python  string
	Version string
	Reason  string // "explicit", "manifest", "cache", "probe"
}

// Resolver는 4단계 인터프리터 판정 파이프라인이다.
type Resolver struct {
	config *config.Config
	cache  *cache.Cache
	py     *python.Adapter
}

// New는 새 Resolver를 생성한다.
func New(cfg *config.Config, c *cache.Cache, py *python.Adapter) *Resolver {
	return &Resolver{config: cfg, cache: c, py: py}
}

// Resolve는 사용할 인터프리터를 판정한다.
// 명시 플래그 → manifest 값 → 캐시에 기록된 인터프리터 → PATH 후보 탐색 순.
func (r *Resolver) Resolve(ctx context.Context, projectKey, explicit string) (*Result, error) {
	// Step 1: 명시 플래그 — 실행 불가면 곧바로 에러 (fallback 없음)
	if explicit != "" {
		v, err := r.py.Version(ctx, explicit)
		if err != nil {
			return nil, fmt.Errorf("resolver.Resolve: %w", err)
		}
		return &Result{Python: explicit, Version: v, Reason: "explicit"}, nil
	}

	// Step 2: manifest 값
	if r.config.Python != "" {
		if v, err := r.py.Version(ctx, r.config.Python); err == nil {
			return &Result{Python: r.config.Python, Version: v, Reason: "manifest"}, nil
		}
	}

	// Step 3: 캐시에 기록된 인터프리터
	if entry, ok := r.cache.Get(projectKey); ok && entry.Python != "" {
		if v, err := r.py.Version(ctx, entry.Python); err == nil {
			return &Result{Python: entry.Python, Version: v, Reason: "cache"}, nil
		}
	}

	// Step 4: PATH 후보 탐색
	for _, candidate := range probeCandidates {
		if candidate == r.config.Python {
			continue // Step 2에서 이미 시도함
		}
		if v, err := r.py.Version(ctx, candidate); err == nil {
			return &Result{Python: candidate, Version: v, Reason: "probe"}, nil
		}
	}

	return nil, fmt.Errorf("resolver.Resolve: %w", ErrNoInterpreter)
}
