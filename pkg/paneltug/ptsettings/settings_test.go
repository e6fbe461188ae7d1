package ptsettings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T, home string, err error) {
	t.Helper()
	oldOsUserHomeDir := osUserHomeDir
	t.Cleanup(func() {
		osUserHomeDir = oldOsUserHomeDir
	})
	osUserHomeDir = func() (string, error) {
		return home, err
	}
}

func TestGetUserDir_Success(t *testing.T) {
	withHome(t, "/tmp/home", nil)

	userDir, err := GetUserDir()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/home", ".paneltug"), userDir)
}

func TestGetUserDir_Error(t *testing.T) {
	wantErr := errors.New("home dir error")
	withHome(t, "", wantErr)

	userDir, err := GetUserDir()
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, UserDir, userDir)
}

func TestDefault(t *testing.T) {
	withHome(t, "/tmp/home", nil)

	s := Default()
	assert.Equal(t, "/tmp/home/.paneltug/paneltug.log", s.LogFile)
	assert.Equal(t, "info", s.LogLevel)
	assert.True(t, s.Colorize)
	assert.Equal(t, 5, s.HeaderHeight)
	assert.Equal(t, []int{33, 34, 33}, s.Proportions)
	assert.NoError(t, s.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("default_location_missing", func(t *testing.T) {
		home := t.TempDir()
		withHome(t, home, nil)

		s, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	})

	t.Run("default_location", func(t *testing.T) {
		home := t.TempDir()
		withHome(t, home, nil)
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".paneltug"), 0o755))
		content := "colorize: false\nproportions: [20, 50, 30]\n"
		require.NoError(t, os.WriteFile(filepath.Join(home, ".paneltug", "settings.yaml"), []byte(content), 0o644))

		s, err := Load("")
		require.NoError(t, err)
		assert.False(t, s.Colorize)
		assert.Equal(t, []int{20, 50, 30}, s.Proportions)
		assert.Equal(t, 5, s.HeaderHeight)
	})

	t.Run("explicit_file", func(t *testing.T) {
		withHome(t, t.TempDir(), nil)
		filePath := filepath.Join(t.TempDir(), "custom.yaml")
		content := "log_file: \"\"\nlog_level: debug\nheader_height: 3\n"
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))

		s, err := Load(filePath)
		require.NoError(t, err)
		assert.Equal(t, "", s.LogFile)
		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, 3, s.HeaderHeight)
	})

	t.Run("explicit_file_missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid_values", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(filePath, []byte("proportions: [1, 2]\n"), 0o644))
		_, err := Load(filePath)
		assert.ErrorIs(t, err, errProportions)
	})

	t.Run("home_unknown", func(t *testing.T) {
		withHome(t, "", errors.New("no home"))
		s, err := Load("")
		assert.NoError(t, err)
		assert.Equal(t, "", s.LogFile)
	})
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Settings)
		ok     bool
	}{
		{"defaults", func(s *Settings) {}, true},
		{"zero_header", func(s *Settings) { s.HeaderHeight = 0 }, false},
		{"negative_proportion", func(s *Settings) { s.Proportions = []int{10, -1, 10} }, false},
		{"four_proportions", func(s *Settings) { s.Proportions = []int{1, 1, 1, 1} }, false},
		{"bad_level", func(s *Settings) { s.LogLevel = "loud" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			err := s.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
