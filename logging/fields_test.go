package logging

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestServiceContext(t *testing.T) {
	t.Parallel()

	name := "thumbparam"
	ver := "v1.2.3.abcdef"

	sc := ServiceContext(name, ver).Interface.(*serviceContext)

	assert.Equal(t, name, sc.Name)
	assert.Equal(t, ver, sc.Version)

	enc := zapcore.NewMapObjectEncoder()
	if assert.NoError(t, sc.MarshalLogObject(enc)) {
		assert.EqualValues(t, name, enc.Fields["service"])
		assert.EqualValues(t, ver, enc.Fields["version"])
	}
}

func TestSourceLocation(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newSourceLocation(0, "", 0, false))

	sl := SourceLocation(runtime.Caller(0)).Interface.(*sourceLocation)

	assert.Contains(t, sl.File, "logging/fields_test.go")
	assert.Equal(t, "34", sl.Line)
	assert.Equal(t, "github.com/traPtitech/thumbparam/logging.TestSourceLocation", sl.Function)

	enc := zapcore.NewMapObjectEncoder()
	if assert.NoError(t, sl.MarshalLogObject(enc)) {
		assert.EqualValues(t, sl.File, enc.Fields["file"])
		assert.EqualValues(t, sl.Line, enc.Fields["line"])
		assert.EqualValues(t, sl.Function, enc.Fields["function"])
	}
}

func TestErrorReport(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newReportContext(0, "", 0, false))

	c := ErrorReport(runtime.Caller(0)).Interface.(*reportContext)
	assert.Contains(t, c.ReportLocation.File, "logging/fields_test.go")
	assert.Equal(t, "github.com/traPtitech/thumbparam/logging.TestErrorReport", c.ReportLocation.Function)

	enc := zapcore.NewMapObjectEncoder()
	if assert.NoError(t, c.MarshalLogObject(enc)) {
		loc := enc.Fields["reportLocation"].(map[string]interface{})
		assert.EqualValues(t, c.ReportLocation.File, loc["filePath"])
		assert.EqualValues(t, c.ReportLocation.Line, loc["lineNumber"])
		assert.EqualValues(t, c.ReportLocation.Function, loc["functionName"])
	}
}
