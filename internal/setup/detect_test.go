package setup

import (
	"context"
	"fmt"
	"testing"

	"github.com/hbjs97/venvx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectInterpreters(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.DefaultResponse = &testutil.Response{Err: fmt.Errorf("not found")}
	fake.Register("python3 --version", "Python 3.12.4\n", nil)
	fake.Register("python3.12 --version", "Python 3.12.4\n", nil)
	fake.Register("python3.10 --version", "Python 3.10.14\n", nil)

	found := DetectInterpreters(context.Background(), fake)

	// python3와 python3.12는 같은 버전이므로 하나만 남는다
	require.Len(t, found, 2)
	assert.Equal(t, Interpreter{Name: "python3", Version: "Python 3.12.4"}, found[0])
	assert.Equal(t, Interpreter{Name: "python3.10", Version: "Python 3.10.14"}, found[1])
}

func TestDetectInterpreters_NoneFound(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.DefaultResponse = &testutil.Response{Err: fmt.Errorf("not found")}

	found := DetectInterpreters(context.Background(), fake)
	assert.Empty(t, found)
}
