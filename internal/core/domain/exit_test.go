package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xambuild/internal/core/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil is success", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "exit error", err: domain.NewExitError(42, errors.New("tool failed")), want: 42},
		{
			name: "wrapped exit error",
			err:  fmt.Errorf("outer: %w", domain.NewExitError(domain.ExitProjectFile, domain.ErrProjectFileNotFound)),
			want: domain.ExitProjectFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExitCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	err := domain.NewExitError(domain.ExitInvalidAction, domain.ErrInvalidAction)
	assert.Contains(t, err.Error(), "invalid action")
	assert.ErrorIs(t, err, domain.ErrInvalidAction)

	bare := &domain.ExitError{Code: 9}
	assert.Equal(t, "exit status 9", bare.Error())
}

func TestCommand_String(t *testing.T) {
	cmd := domain.NewCommand("msbuild", "/p/App.csproj", "/p:Configuration=Debug")
	assert.Equal(t, "msbuild /p/App.csproj /p:Configuration=Debug", cmd.String())
	assert.Equal(t, "nuget", domain.NewCommand("nuget").String())
}
