package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filetug/paneltug/pkg/paneltug"
	"github.com/filetug/paneltug/pkg/paneltug/ptsettings"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietConfig writes settings that keep logs out of the user's home.
func quietConfig(t *testing.T) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_file: \"\"\n"), 0o644))
	return configPath
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"paneltug"}, args...)
}

func captureStderr(t *testing.T, f func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() {
		os.Stderr = oldStderr
	}()
	f()
	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestMainRoot(t *testing.T) {
	runCalled := false
	oldRun := run
	defer func() {
		run = oldRun
	}()
	run = func(app application) error {
		runCalled = true
		return nil
	}
	withArgs(t, "--config", quietConfig(t))

	main()

	if !runCalled {
		t.Fatal("expected main function to call run")
	}
}

func TestMain_ExitCode(t *testing.T) {
	oldRun := run
	oldOsExit := osExit
	defer func() {
		run = oldRun
		osExit = oldOsExit
	}()
	expectedErr := errors.New("screen init failed")
	run = func(app application) error {
		return expectedErr
	}
	exitCode := 0
	osExit = func(code int) {
		exitCode = code
	}
	withArgs(t, "--config", quietConfig(t))

	output := captureStderr(t, main)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, output, expectedErr.Error())
}

func TestMain_RejectsArguments(t *testing.T) {
	oldOsExit := osExit
	defer func() { osExit = oldOsExit }()
	exitCode := 0
	osExit = func(code int) {
		exitCode = code
	}
	withArgs(t, "/tmp")

	output := captureStderr(t, main)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, output, "unknown command")
}

func Test_newApp(t *testing.T) {
	oldSetupApp := setupApp
	defer func() {
		setupApp = oldSetupApp
	}()
	var gotDir string
	setupApp = func(app *tview.Application, startDir string, settings ptsettings.Settings) *paneltug.Browser {
		gotDir = startDir
		return nil
	}

	app := newApp("/start", ptsettings.Default())
	if app == nil {
		t.Errorf("newApp returned nil")
	}
	assert.Equal(t, "/start", gotDir)
}

type fakeApp struct {
	err error
}

func (f fakeApp) Run() error {
	return f.err
}

func Test_run(t *testing.T) {
	assert.NoError(t, run(fakeApp{}))

	expectedErr := errors.New("test error")
	err := run(fakeApp{err: expectedErr})
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, strings.HasPrefix(err.Error(), "terminal failure"))
}

func Test_runBrowser(t *testing.T) {
	oldRun := run
	oldGetwd := osGetwd
	defer func() {
		run = oldRun
		osGetwd = oldGetwd
	}()
	run = func(app application) error {
		return nil
	}

	t.Run("missing_config", func(t *testing.T) {
		err := runBrowser(rootOptions{configPath: filepath.Join(t.TempDir(), "none.yaml")})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad_log_level", func(t *testing.T) {
		err := runBrowser(rootOptions{configPath: quietConfig(t), logLevel: "loud"})
		assert.Error(t, err)
	})

	t.Run("getwd_error", func(t *testing.T) {
		osGetwd = func() (string, error) {
			return "", errors.New("cwd removed")
		}
		defer func() { osGetwd = oldGetwd }()
		err := runBrowser(rootOptions{configPath: quietConfig(t)})
		assert.ErrorContains(t, err, "cwd removed")
	})

	t.Run("profiles", func(t *testing.T) {
		dir := t.TempDir()
		o := rootOptions{
			configPath: quietConfig(t),
			cpuProfile: filepath.Join(dir, "cpu.prof"),
			memProfile: filepath.Join(dir, "mem.prof"),
		}
		require.NoError(t, runBrowser(o))
		assert.FileExists(t, o.cpuProfile)
		assert.FileExists(t, o.memProfile)
	})
}
