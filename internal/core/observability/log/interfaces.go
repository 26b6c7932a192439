package log

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Log is the logging surface the rest of the engine programs against.
// The concrete implementation is a thin wrapper over zap; keeping the
// interface here lets tooling swap in a no-op or capture logger.
type Log interface {
	Log(level Level, msg string, fields ...Field)

	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	With(fields ...Field) Log

	SetLevel(level Level)
	GetLevel() Level

	Sync() error
}

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
	"fatal":   LevelFatal,
}

// ParseLevel maps a config string onto a Level. Unknown values fall back
// to info so a typo in a config file never silences the log.
func ParseLevel(s string) Level {
	if lvl, ok := levelNames[s]; ok {
		return lvl
	}
	return LevelInfo
}

// KnownLevel reports whether s names a level ParseLevel understands. The
// empty string counts; it means "default".
func KnownLevel(s string) bool {
	if s == "" {
		return true
	}
	_, ok := levelNames[s]
	return ok
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "info"
	}
}

// Field is a structured log attribute. The small union keeps call sites
// free of zap imports.
type Field struct {
	Key   string
	Type  FieldType
	Value any
}

type FieldType uint8

const (
	UnknownType FieldType = iota
	BoolType
	DurationType
	Float64Type
	IntType
	Int64Type
	StringType
	TimeType
	Uint64Type
	ErrorType
)

func Any(key string, val any) Field {
	return Field{Key: key, Type: UnknownType, Value: val}
}

func Bool(key string, val bool) Field {
	return Field{Key: key, Type: BoolType, Value: val}
}

func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Type: DurationType, Value: val}
}

func Float64(key string, val float64) Field {
	return Field{Key: key, Type: Float64Type, Value: val}
}

func Int(key string, val int) Field {
	return Field{Key: key, Type: IntType, Value: val}
}

func Int64(key string, val int64) Field {
	return Field{Key: key, Type: Int64Type, Value: val}
}

func String(key string, val string) Field {
	return Field{Key: key, Type: StringType, Value: val}
}

func Time(key string, val time.Time) Field {
	return Field{Key: key, Type: TimeType, Value: val}
}

func Uint64(key string, val uint64) Field {
	return Field{Key: key, Type: Uint64Type, Value: val}
}

// Vec3 renders a spatial vector as "(x, y, z)" with short precision,
// which keeps position dumps readable in scene traces.
func Vec3(key string, val mgl64.Vec3) Field {
	return Field{
		Key:   key,
		Type:  StringType,
		Value: fmt.Sprintf("(%.3g, %.3g, %.3g)", val.X(), val.Y(), val.Z()),
	}
}

func Error(val error) Field {
	return Field{Key: "error", Type: ErrorType, Value: val}
}

func ErrorWithKey(key string, val error) Field {
	return Field{Key: key, Type: ErrorType, Value: val}
}
