package doctor_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/hbjs97/venvx/internal/doctor"
	"github.com/hbjs97/venvx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInterpreter_AllPresent(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("python3 --version", "Python 3.12.4", nil)
	fake.Register("python3 -m pip --version", "pip 24.0", nil)

	results := doctor.CheckInterpreter(context.Background(), fake, "python3")
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, doctor.StatusOK, r.Status, "check %s should be OK", r.Name)
	}
}

func TestCheckInterpreter_PythonMissing(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("python3 --version", "", fmt.Errorf("not found"))

	results := doctor.CheckInterpreter(context.Background(), fake, "python3")
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusFail, results[0].Status)
	assert.NotEmpty(t, results[0].Fix)
}

func TestCheckInterpreter_PipMissing(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("python3 --version", "Python 3.12.4", nil)
	fake.Register("python3 -m pip --version", "", fmt.Errorf("No module named pip"))

	results := doctor.CheckInterpreter(context.Background(), fake, "python3")
	require.Len(t, results, 2)

	pip := results[1]
	assert.Equal(t, "pip", pip.Name)
	assert.Equal(t, doctor.StatusFail, pip.Status)
	assert.Contains(t, pip.Fix, "ensurepip")
}

func TestCheckEnvDir_Missing(t *testing.T) {
	root := testutil.TempProject(t)

	result := doctor.CheckEnvDir(root, ".venv")
	assert.Equal(t, doctor.StatusFail, result.Status)
	assert.Contains(t, result.Fix, "venvx install")
}

func TestCheckEnvDir_CorruptWithoutInterpreter(t *testing.T) {
	root := testutil.TempProject(t)
	testutil.MakeEnvDir(t, root, ".venv", "bin")

	result := doctor.CheckEnvDir(root, ".venv")
	assert.Equal(t, doctor.StatusFail, result.Status)
	assert.Contains(t, result.Message, "손상")
}

func TestCheckEnvDir_OK(t *testing.T) {
	root := testutil.TempProject(t)
	envDir := testutil.MakeEnvDir(t, root, ".venv", "bin")
	testutil.WriteEntry(t, filepath.Join(envDir, "bin"), "python")

	result := doctor.CheckEnvDir(root, ".venv")
	assert.Equal(t, doctor.StatusOK, result.Status)
}

func TestCheckEnvInterference(t *testing.T) {
	t.Setenv("PYTHONHOME", "/opt/python")
	t.Setenv("PYTHONPATH", "")

	results := doctor.CheckEnvInterference()
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusWarn, results[0].Status)
	assert.Contains(t, results[0].Fix, "unset PYTHONHOME")
}

func TestCheckMarker(t *testing.T) {
	root := testutil.TempProject(t)
	envDir := filepath.Join(root, ".venv")

	// 마커 없음 → OK
	result := doctor.CheckMarker("", root, ".venv")
	assert.Equal(t, doctor.StatusOK, result.Status)

	// 같은 환경 → OK
	result = doctor.CheckMarker(envDir, root, ".venv")
	assert.Equal(t, doctor.StatusOK, result.Status)

	// 다른 환경 → WARN
	result = doctor.CheckMarker("/other/.venv", root, ".venv")
	assert.Equal(t, doctor.StatusWarn, result.Status)
}
