package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/archive"
	"github.com/sirkon/linecov/internal/linestore"
	"github.com/sirkon/linecov/internal/report"
	"github.com/sirkon/linecov/internal/snapshot"
	"github.com/sirkon/linecov/internal/tracker"
	"github.com/sirkon/message"
)

// Режимы раскраски вывода.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type globals struct {
	Config       kong.ConfigFlag `help:"YAML configuration file."`
	Archive      string          `help:"Checkpoint archive file." default:"${archive}" type:"path"`
	Color        string          `help:"Colorize output." enum:"auto,always,never" default:"auto"`
	Format       string          `help:"Snapshot file format (bin, msgpack, yaml), guessed by file extension when omitted."`
	MaxFileSlots int             `help:"Limit of file slots, 0 disables it." default:"${max_file_slots}"`
	MaxLineSlots int             `help:"Limit of line slots per file, 0 disables it." default:"${max_line_slots}"`
	Verbose      bool            `short:"v" help:"Log coverage store events."`
}

func (g *globals) openArchive() (*archive.Archive, error) {
	a, err := archive.Open(g.Archive)
	if err != nil {
		return nil, errors.Wrap(err, "open checkpoint archive")
	}

	return a, nil
}

func (g *globals) newProcess() *tracker.Process {
	return tracker.NewProcess(
		messageLogger{verbose: g.Verbose},
		linestore.WithMaxFileSlots(g.MaxFileSlots),
		linestore.WithMaxLineSlots(g.MaxLineSlots),
	)
}

func (g *globals) colorize(f *os.File) bool {
	switch g.Color {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return report.ColorizeFor(f)
	}
}

// formatFor формат файла слепка: явно заданный или по расширению файла.
func (g *globals) formatFor(path string) (snapshot.Format, error) {
	if g.Format != "" {
		return snapshot.ParseFormat(g.Format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return snapshot.FormatYAML, nil
	case ".msgpack", ".mp":
		return snapshot.FormatMsgpack, nil
	default:
		return snapshot.FormatBinary, nil
	}
}

func closeArchive(a *archive.Archive) {
	if err := a.Close(); err != nil {
		message.Warning(errors.Wrap(err, "close checkpoint archive"))
	}
}

func loadCheckpoint(a *archive.Archive, ref string) (*snapshot.Snapshot, archive.Checkpoint, error) {
	id, err := a.Resolve(ref)
	if err != nil {
		return nil, archive.Checkpoint{}, errors.Wrap(err, "resolve checkpoint").Str("checkpoint-ref", ref)
	}

	s, cp, err := a.Load(id)
	if err != nil {
		return nil, archive.Checkpoint{}, errors.Wrap(err, "load checkpoint")
	}

	return s, cp, nil
}

// stdPath путь означающий стандартный ввод или вывод.
const stdPath = "-"

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == stdPath {
		return nopWriteCloser{Writer: os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create output file").Str("output-path", path)
	}

	return f, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == stdPath {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input file").Str("input-path", path)
	}

	return f, nil
}

// writeOutput запись в файл или стандартный вывод через буфер.
func writeOutput(path string, write func(w io.Writer) error) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	if err := write(bw); err != nil {
		_ = out.Close()
		return err
	}

	if err := bw.Flush(); err != nil {
		_ = out.Close()
		return errors.Wrap(err, "flush output").Str("output-path", path)
	}

	if err := out.Close(); err != nil {
		return errors.Wrap(err, "close output").Str("output-path", path)
	}

	return nil
}
