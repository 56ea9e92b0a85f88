package console_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/xambuild/internal/adapters/console"
)

func TestConsole_AsciiOutput(t *testing.T) {
	var buf bytes.Buffer
	c := console.NewWithProfile(&buf, termenv.Ascii)

	c.Step("Building with 'Debug' configuration...")
	c.Command("msbuild /p/App.csproj /p:Configuration=Debug")
	c.Line("XAMBUILD_PLATFORM not set")
	c.Done()

	assert.Equal(t,
		"● Building with 'Debug' configuration...\n"+
			"=> msbuild /p/App.csproj /p:Configuration=Debug\n"+
			"XAMBUILD_PLATFORM not set\n"+
			"✓ Done!\n",
		buf.String())
}

func TestConsole_ColorOutput(t *testing.T) {
	var buf bytes.Buffer
	c := console.NewWithProfile(&buf, termenv.ANSI)

	c.Done()

	assert.Contains(t, buf.String(), "Done!")
	assert.Contains(t, buf.String(), "\x1b[", "expected ANSI escape sequence")
}

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	assert.Equal(t, termenv.Ascii, console.ColorProfile(&buf), "non-terminal writers get no colour")

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, console.ColorProfile(&buf))
}

func TestNew_Nil(t *testing.T) {
	// Should default to stdout, we just check it doesn't panic
	assert.NotNil(t, console.New(nil))
}
