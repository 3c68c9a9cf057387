package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache는 프로젝트별 설치 상태 캐시다. 키는 정규화된 프로젝트 루트 경로다.
type Cache struct {
	Version int              `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// Entry는 하나의 프로젝트 설치 기록이다.
type Entry struct {
	RequirementsHash string `json:"requirements_hash"`
	Python           string `json:"python"`
	InstalledAt      string `json:"installed_at"`
}

// New는 빈 캐시를 생성한다.
func New() *Cache {
	return &Cache{Version: 1, Entries: make(map[string]Entry)}
}

// Load는 캐시 파일을 파싱한다. 파일 없음/파싱 실패 시 빈 캐시 반환 (graceful).
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache.Load: %w", err)
	}
	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return New(), nil
	}
	if c.Entries == nil {
		c.Entries = make(map[string]Entry)
	}
	return &c, nil
}

// Lookup은 프로젝트 루트로 캐시를 조회한다.
// requirements 해시가 일치하고 TTL 이내여야 hit다.
func (c *Cache) Lookup(key, requirementsHash string, ttlDays int) (*Entry, bool) {
	e, ok := c.Entries[key]
	if !ok {
		return nil, false
	}
	if e.RequirementsHash != requirementsHash {
		return nil, false
	}
	installed, err := time.Parse(time.RFC3339, e.InstalledAt)
	if err != nil {
		return nil, false
	}
	if time.Since(installed) > time.Duration(ttlDays)*24*time.Hour {
		return nil, false
	}
	return &e, true
}

// Get은 TTL/해시 검증 없이 항목을 조회한다. 인터프리터 판정에 쓰인다.
func (c *Cache) Get(key string) (*Entry, bool) {
	e, ok := c.Entries[key]
	if !ok {
		return nil, false
	}
	return &e, true
}

// Set은 캐시 항목을 추가하거나 갱신한다.
func (c *Cache) Set(key string, entry Entry) {
	c.Entries[key] = entry
}

// Invalidate는 프로젝트의 설치 기록을 제거한다. install --force가 사용한다.
func (c *Cache) Invalidate(key string) {
	delete(c.Entries, key)
}

// Save는 캐시를 JSON 파일로 저장한다 (0600 권한).
func (c *Cache) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("cache.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("cache.Save: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
