package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{Platform: PlatformMicrosoft, Variable: "LOCALAPPDATA"}
	assert.Contains(t, err.Error(), "LOCALAPPDATA")
	assert.Contains(t, err.Error(), "Microsoft/Xbox")
}

func TestNotFoundError_Unwrap(t *testing.T) {
	err := &NotFoundError{Platform: PlatformSteam, What: "save folder", BaseErr: fs.ErrNotExist}
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "Steam: cannot find save folder: file does not exist", err.Error())
}

func TestIsHelpers_SeeThroughWrapping(t *testing.T) {
	cfgErr := fmt.Errorf("locate: %w", &ConfigurationError{Platform: PlatformSteam, Variable: "LOCALAPPDATA"})
	assert.True(t, IsConfiguration(cfgErr))
	assert.False(t, IsNotFound(cfgErr))

	nfErr := fmt.Errorf("discover: %w", &NotFoundError{What: "roots"})
	assert.True(t, IsNotFound(nfErr))
	assert.False(t, IsConfiguration(nfErr))
}

func TestPlatform_Label(t *testing.T) {
	tests := []struct {
		p    Platform
		want string
	}{
		{PlatformMicrosoft, "Microsoft/Xbox"},
		{PlatformSteam, "Steam"},
		{"epic", "epic"},
	}
	for _, tt := range tests {
		if got := tt.p.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.p, got, tt.want)
		}
	}
}
