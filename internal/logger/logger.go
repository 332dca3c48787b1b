// Package logger builds the logrus loggers used by the todolist binaries.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options are the logger parameters.
type Options struct {
	// Level is the minimum logged level (e.g. debug, info, warn).
	Level string `koanf:"level"`
	// Path is the file where the logs are also written, with rotation.
	// An empty path disables the file output.
	Path string `koanf:"path"`
	// MaxSize is the size in megabytes of a log file before it gets rotated.
	MaxSize int `koanf:"max_size"`
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int `koanf:"max_backups"`
	// MaxAge is number of days to retain rotated files.
	MaxAge int `koanf:"max_age"`
}

// New returns a new well configured logger writing to w.
func New(w io.Writer, o Options) (*logrus.Logger, error) {
	formatter := new(Formatter)

	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(formatter)

	if o.Level != "" {
		level, err := logrus.ParseLevel(o.Level)
		if err != nil {
			return nil, errors.Wrap(err, "could not parse log level")
		}
		log.SetLevel(level)
	}

	if o.Path != "" {
		log.Hooks.Add(&fileHook{
			rotate: &lumberjack.Logger{
				Filename:   o.Path,
				MaxSize:    o.MaxSize, // megabytes
				MaxBackups: o.MaxBackups,
				MaxAge:     o.MaxAge, //days
			},
			formatter: formatter,
		})
	}

	return log, nil
}

// Discard returns a logger without any output.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Dump returns a human readable representation of v.
func Dump(v any) string {
	return litter.Options{HidePrivateFields: true, StripPackageNames: true}.Sdump(v)
}

// Stderr returns a logger writing to stderr, falling back on info level if o is invalid.
func Stderr(o Options) *logrus.Logger {
	l, err := New(os.Stderr, o)
	if err != nil {
		l, _ = New(os.Stderr, Options{})
		l.WithError(err).Warn("invalid logger configuration")
	}
	return l
}

////////////////////
//                //
// File hook      //
//                //
////////////////////

type fileHook struct {
	sync.Mutex
	rotate    *lumberjack.Logger
	formatter logrus.Formatter
}

// Fire writes the formatted entry to the rotated file.
func (hook *fileHook) Fire(entry *logrus.Entry) error {
	hook.Lock()
	defer hook.Unlock()

	// use our formatter instead of entry.String()
	msg, err := hook.formatter.Format(entry)
	if err != nil {
		log.Println("failed to generate string for entry:", err)
		return err
	}

	_, err = hook.rotate.Write(msg)
	return err
}

// Levels returns configured log levels.
func (hook *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

////////////////////
//                //
// Log formatter  //
//                //
////////////////////

// A Formatter renders entries as `[time] LEVEL: message (key=value, ...)`.
type Formatter struct{}

// Format implements Logrus formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	fields := ""
	if len(entry.Data) > 0 {
		fs := []string{}
		for k, v := range entry.Data {
			fs = append(fs, fmt.Sprintf("%s=%v", k, v))
		}
		sort.Strings(fs)
		fields = fmt.Sprintf(" (%s)", strings.Join(fs, ", "))
	}

	t := entry.Time
	if t.IsZero() {
		t = time.Now()
	}

	data := fmt.Sprintf("[%s] %+5s: %s%s\n",
		t.Format(time.RFC3339),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
		fields,
	)
	return []byte(data), nil
}
