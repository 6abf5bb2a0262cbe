package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"procman/internal/app/control"
	"procman/internal/app/errors"
	"procman/internal/app/monitor"
	"procman/internal/config"
	"procman/internal/config/logger"
)

func newTestCLI(t *testing.T, input string) (*cli, *monitor.MockEngine) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	engine := monitor.NewMockEngine(mockCtrl)
	terminator := control.NewMockTerminator(mockCtrl)

	cfg := config.DefaultConfig()
	log := logger.NewLoggerWithOutput(cfg, io.Discard)

	repl := NewREPL(engine, terminator, &fakeRecorder{path: "procman.log"}, cfg, log)
	repl.in = strings.NewReader(input)
	repl.out = io.Discard

	c, ok := NewCLI(cfg, repl, log).(*cli)
	require.True(t, ok)

	return c, engine
}

func Test_NewCLI(t *testing.T) {
	c, _ := newTestCLI(t, "")

	assert.NotNil(t, c.cfg)
	assert.NotNil(t, c.repl)
}

func Test_Run_Version(t *testing.T) {
	c, _ := newTestCLI(t, "")

	assert.NoError(t, c.Run([]string{"version"}))
	assert.NoError(t, c.Run([]string{"-v"}))
}

func Test_Run_Help(t *testing.T) {
	c, _ := newTestCLI(t, "")

	assert.NoError(t, c.Run([]string{"--help"}))
}

func Test_Run_Init(t *testing.T) {
	c, _ := newTestCLI(t, "")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, c.Run([]string{"init"}))
	assert.FileExists(t, config.FileName)

	// refuses to overwrite an existing file
	assert.Error(t, c.Run([]string{"init"}))
}

func Test_Run_StartsMonitorAndREPL(t *testing.T) {
	c, engine := newTestCLI(t, "exit\n")

	gomock.InOrder(
		engine.EXPECT().Start("memory").Return(nil),
		engine.EXPECT().Active().Return(true),
		engine.EXPECT().Stop().Return(nil),
	)

	assert.NoError(t, c.Run([]string{"run", "memory"}))
}

func Test_Run_StartFailure(t *testing.T) {
	c, engine := newTestCLI(t, "")

	engine.EXPECT().Start("").Return(errors.ErrMonitorAlreadyActive)

	assert.ErrorIs(t, c.Run(nil), errors.ErrMonitorAlreadyActive)
}

func Test_Run_NoColorFlag(t *testing.T) {
	c, engine := newTestCLI(t, "exit\n")

	engine.EXPECT().Start("").Return(nil)
	engine.EXPECT().Active().Return(false)

	require.NoError(t, c.Run([]string{"run", "--no-color"}))
	assert.True(t, c.cfg.Display.NoColor)
}

func Test_Run_ParseError(t *testing.T) {
	c, _ := newTestCLI(t, "")

	assert.Error(t, c.Run([]string{"run", "cpu", "extra"}))
}
