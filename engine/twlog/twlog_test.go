package twlog

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/bmizerany/assert"
)

func TestStringToLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, StringToLevel("debug"))
	assert.Equal(t, InfoLevel, StringToLevel("INFO"))
	assert.Equal(t, WarnLevel, StringToLevel("warning"))
	assert.Equal(t, ErrorLevel, StringToLevel("error"))
	assert.Equal(t, PanicLevel, StringToLevel("panic"))
	assert.Equal(t, FatalLevel, StringToLevel("fatal"))
	assert.Equal(t, DebugLevel, StringToLevel("nonsense"))
}

func TestTWLog(t *testing.T) {
	var buf bytes.Buffer
	SetSource("twlog_test")
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel(DebugLevel)

	Debugf("this is a debug %d", 1)
	SetLevel(InfoLevel)
	assert.Equal(t, InfoLevel, GetLevel())
	Debugf("SHOULD NOT SEE THIS!")
	Infof("this is an info %d", 2)
	Warnf("this is a warning %d", 3)
	func() {
		defer func() {
			_ = recover()
		}()
		Panicf("this is a panic %d", 4)
	}()
	SetLevel(DebugLevel)

	out := buf.String()
	assert.T(t, strings.Contains(out, "this is a debug 1"), out)
	assert.T(t, !strings.Contains(out, "SHOULD NOT SEE THIS"), out)
	assert.T(t, strings.Contains(out, "this is an info 2"), out)
	assert.T(t, strings.Contains(out, "twlog_test"), out)
}
