package logging

import (
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceContextKey = "serviceContext"
	sourceLocationKey = "logging.googleapis.com/sourceLocation"
	contextKey        = "context"
)

type serviceContext struct {
	Name    string `json:"service"`
	Version string `json:"version"`
}

// ServiceContext serviceContextフィールド
func ServiceContext(name, version string) zap.Field {
	return zap.Object(serviceContextKey, &serviceContext{Name: name, Version: version})
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (sc serviceContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("service", sc.Name)
	enc.AddString("version", sc.Version)
	return nil
}

type sourceLocation struct {
	File     string `json:"file"`
	Line     string `json:"line"`
	Function string `json:"function"`
}

// SourceLocation 呼び出し元の位置情報フィールド
func SourceLocation(pc uintptr, file string, line int, ok bool) zap.Field {
	return zap.Object(sourceLocationKey, newSourceLocation(pc, file, line, ok))
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (l sourceLocation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("file", l.File)
	enc.AddString("line", l.Line)
	enc.AddString("function", l.Function)
	return nil
}

func newSourceLocation(pc uintptr, file string, line int, ok bool) *sourceLocation {
	if !ok {
		return nil
	}
	return &sourceLocation{File: file, Line: strconv.Itoa(line), Function: funcName(pc)}
}

type reportContext struct {
	ReportLocation sourceLocation `json:"reportLocation"`
}

// ErrorReport エラー報告用のcontextフィールド
func ErrorReport(pc uintptr, file string, line int, ok bool) zap.Field {
	return zap.Object(contextKey, newReportContext(pc, file, line, ok))
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (c reportContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return enc.AddObject("reportLocation", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("filePath", c.ReportLocation.File)
		enc.AddString("lineNumber", c.ReportLocation.Line)
		enc.AddString("functionName", c.ReportLocation.Function)
		return nil
	}))
}

func newReportContext(pc uintptr, file string, line int, ok bool) *reportContext {
	loc := newSourceLocation(pc, file, line, ok)
	if loc == nil {
		return nil
	}
	return &reportContext{ReportLocation: *loc}
}

func funcName(pc uintptr) string {
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return ""
}
