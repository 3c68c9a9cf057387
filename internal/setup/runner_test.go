package setup

import (
	"context"
	"fmt"
	"testing"

	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFormRunner는 테스트용 FormRunner다.
type mockFormRunner struct {
	projectInput *ProjectInput
	python       string
	confirms     []bool
	confirmIdx   int
}

func (m *mockFormRunner) RunProjectForm(defaults *ProjectInput) (*ProjectInput, error) {
	if m.projectInput != nil {
		return m.projectInput, nil
	}
	if defaults == nil {
		return nil, fmt.Errorf("no project input")
	}
	copied := *defaults
	return &copied, nil
}

func (m *mockFormRunner) RunPythonSelect(detected []Interpreter) (string, error) {
	if m.python != "" {
		return m.python, nil
	}
	if len(detected) > 0 {
		return detected[0].Name, nil
	}
	return "", fmt.Errorf("no interpreter")
}

func (m *mockFormRunner) RunConfirm(message string) (bool, error) {
	if m.confirmIdx >= len(m.confirms) {
		return false, nil
	}
	c := m.confirms[m.confirmIdx]
	m.confirmIdx++
	return c, nil
}

func TestRunner_FirstRun(t *testing.T) {
	root := testutil.TempProject(t)

	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{Err: fmt.Errorf("not found")}
	fc.Register("python3 --version", "Python 3.12.4", nil)
	fc.Register("python3 -m pip --version", "pip 24.0", nil)

	r := &Runner{
		ProjectRoot:   root,
		Commander:     fc,
		FormRunner:    &mockFormRunner{},
		SkipShellHook: true,
	}

	err := r.Run(context.Background())
	require.NoError(t, err)

	cfg, err := config.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "python3", cfg.Python)
	assert.Equal(t, ".venv", cfg.EnvDir)
	assert.Equal(t, "main.py", cfg.Entry)
	assert.Equal(t, "requirements.txt", cfg.Requirements)
}

func TestRunner_FirstRun_CustomInput(t *testing.T) {
	root := testutil.TempProject(t)

	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{Err: fmt.Errorf("not found")}
	fc.Register("python3.11 --version", "Python 3.11.9", nil)

	mock := &mockFormRunner{
		python: "python3.11",
		projectInput: &ProjectInput{
			EnvDir:       "env",
			Requirements: "requirements-dev.txt",
			Entry:        "fetch.py",
		},
	}
	r := &Runner{ProjectRoot: root, Commander: fc, FormRunner: mock, SkipShellHook: true}

	err := r.Run(context.Background())
	require.NoError(t, err)

	cfg, err := config.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "python3.11", cfg.Python)
	assert.Equal(t, "env", cfg.EnvDir)
	assert.Equal(t, "fetch.py", cfg.Entry)
}

func TestRunner_ExistingDeclined(t *testing.T) {
	root := testutil.TempProject(t)
	testutil.WriteManifest(t, root, `version = 1
python = "python3.12"
entry = "app.py"
`)

	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{Err: fmt.Errorf("not found")}

	r := &Runner{
		ProjectRoot:   root,
		Commander:     fc,
		FormRunner:    &mockFormRunner{confirms: []bool{false}},
		SkipShellHook: true,
	}

	err := r.Run(context.Background())
	require.NoError(t, err)

	// 거절 시 manifest가 그대로 남는다
	cfg, err := config.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "python3.12", cfg.Python)
	assert.Equal(t, "app.py", cfg.Entry)
}

func TestRunner_ExistingEdit(t *testing.T) {
	root := testutil.TempProject(t)
	testutil.WriteManifest(t, root, `version = 1
python = "python3.12"
entry = "app.py"
`)

	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{Err: fmt.Errorf("not found")}
	fc.Register("python3 --version", "Python 3.12.4", nil)

	mock := &mockFormRunner{
		confirms: []bool{true},
		projectInput: &ProjectInput{
			EnvDir:       ".venv",
			Requirements: "requirements.txt",
			Entry:        "main.py",
		},
	}
	r := &Runner{ProjectRoot: root, Commander: fc, FormRunner: mock, SkipShellHook: true}

	err := r.Run(context.Background())
	require.NoError(t, err)

	cfg, err := config.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "python3", cfg.Python)
	assert.Equal(t, "main.py", cfg.Entry)
}
