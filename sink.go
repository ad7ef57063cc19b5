package zlog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Record is one finished log event handed across the sink boundary. Records
// are not retained after Submit returns and the dispatcher never buffers
// them.
type Record struct {
	Scope      Scope
	Level      Level
	Message    string
	ModulePath string
}

// Sink receives finished records. Submit must return quickly (it may format
// and buffer asynchronously); Flush blocks until all previously submitted
// records have reached their destination.
type Sink interface {
	Submit(Record)
	Flush()
}

// sinkHolder exists so the active sink interface value can sit behind an
// atomic pointer.
type sinkHolder struct {
	sink Sink
}

var activeSink atomic.Pointer[sinkHolder]

// SetSink installs s as the destination for subsequent records. A nil s
// drops records until another sink is installed.
func SetSink(s Sink) {
	if s == nil {
		activeSink.Store(nil)
		return
	}
	activeSink.Store(&sinkHolder{sink: s})
}

// submit hands one record to the active sink, if any.
func submit(r Record) {
	if h := activeSink.Load(); h != nil {
		h.sink.Submit(r)
	}
}

// Flush blocks until all previously submitted records have been written.
func Flush() {
	if h := activeSink.Load(); h != nil {
		h.sink.Flush()
	}
}

// zerologSink renders records through a zerolog logger: the scope path and
// module path become fields, the message stays a plain string.
type zerologSink struct {
	logger  zerolog.Logger
	flusher func()
}

func newZerologSink(w io.Writer, flusher func()) *zerologSink {
	return &zerologSink{
		logger:  zerolog.New(w).With().Timestamp().Logger(),
		flusher: flusher,
	}
}

func (s *zerologSink) Submit(r Record) {
	e := s.logger.WithLevel(r.Level.zerologLevel())
	if sp := r.Scope.path(); sp != emptyString {
		e = e.Str("scope", sp)
	}
	if r.ModulePath != emptyString {
		e = e.Str("module", r.ModulePath)
	}
	e.Msg(r.Message)
}

func (s *zerologSink) Flush() {
	if s.flusher != nil {
		s.flusher()
	}
}

// InitOutputStderr directs records to stderr using the console format.
func InitOutputStderr() {
	SetSink(newZerologSink(zerolog.ConsoleWriter{Out: os.Stderr}, nil))
}

// InitOutputStdout directs records to stdout using the console format.
func InitOutputStdout() {
	SetSink(newZerologSink(zerolog.ConsoleWriter{Out: os.Stdout}, nil))
}

// InitOutputFile directs records to a rolling log file at path. opts may be
// nil, in which case DefaultFileOutputOptions apply. Rotation is handled by
// lumberjack; writes are unbuffered, so Flush has nothing extra to do for
// this sink.
func InitOutputFile(path string, opts *FileOutputOptions) error {
	if path == emptyString {
		return errors.New("log file path must not be empty")
	}
	if opts == nil {
		defaults := DefaultFileOutputOptions()
		opts = &defaults
	}
	if err := validateFileOutputOptions(opts); err != nil {
		return fmt.Errorf("invalid file output options: %w", err)
	}
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	SetSink(newZerologSink(writer, nil))
	return nil
}
