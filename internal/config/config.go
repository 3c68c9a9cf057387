package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// FileName은 프로젝트 루트의 manifest 파일 이름이다.
const FileName = "venvx.toml"

// Config는 venvx manifest의 최상위 구조체다. 파일이 없어도 기본값으로 동작한다.
type Config struct {
	Version      int    `toml:"version"`
	EnvDir       string `toml:"env_dir"`
	Python       string `toml:"python"`
	Requirements string `toml:"requirements"`
	Entry        string `toml:"entry"`
	CacheTTLDays int    `toml:"cache_ttl_days"`
}

// Default는 manifest가 없을 때 사용하는 기본 설정을 반환한다.
// 기본값은 부트스트랩 관례를 따른다: .venv, python3, requirements.txt, main.py.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// Load는 projectRoot의 venvx.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다 (graceful).
func Load(projectRoot string) (*Config, error) {
	path := filepath.Join(projectRoot, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 venvx.toml로 저장한다 (0600 권한).
func Save(projectRoot string, cfg *Config) error {
	path := filepath.Join(projectRoot, FileName)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// Path는 projectRoot 기준 manifest 경로를 반환한다.
func Path(projectRoot string) string {
	return filepath.Join(projectRoot, FileName)
}

// Exists는 projectRoot에 manifest가 있는지 확인한다.
func Exists(projectRoot string) bool {
	_, err := os.Stat(Path(projectRoot))
	return err == nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.EnvDir == "" {
		c.EnvDir = ".venv"
	}
	if c.Python == "" {
		c.Python = "python3"
	}
	if c.Requirements == "" {
		c.Requirements = "requirements.txt"
	}
	if c.Entry == "" {
		c.Entry = "main.py"
	}
	if c.CacheTTLDays == 0 {
		c.CacheTTLDays = 30
	}
}

func (c *Config) validate() error {
	if filepath.IsAbs(c.EnvDir) {
		return fmt.Errorf("config.Load: %w: env_dir는 상대 경로여야 합니다: %s", ErrConfig, c.EnvDir)
	}
	// ".."는 경로 세그먼트 단위로 검사한다. "my..env" 같은 이름은 유효하다.
	for _, seg := range strings.Split(filepath.ToSlash(c.EnvDir), "/") {
		if seg == ".." {
			return fmt.Errorf("config.Load: %w: env_dir는 프로젝트 밖을 가리킬 수 없습니다: %s", ErrConfig, c.EnvDir)
		}
	}
	if strings.ContainsAny(c.Python, " \t") {
		return fmt.Errorf("config.Load: %w: python은 실행 파일 이름 또는 경로여야 합니다: %q", ErrConfig, c.Python)
	}
	return nil
}
