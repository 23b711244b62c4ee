package main

import (
	"fmt"
	"os"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
	"github.com/sirkon/linecov/internal/dir"
	"github.com/sirkon/linecov/internal/trace"
	"github.com/sirkon/linecov/internal/tracker"
	"github.com/sirkon/message"
)

type replayCommand struct {
	Traces  []string `arg:"" optional:"" type:"existingfile" help:"Trace files."`
	Dir     string   `help:"Directory with trace files." type:"existingdir"`
	Pattern string   `help:"Trace file name pattern for --dir." default:"*.trace"`
	Seed    string   `help:"Checkpoint to start from: latest, ID or unique ID prefix."`
	Label   string   `help:"Label of the new checkpoint."`
}

func (c *replayCommand) Run(g *globals) error {
	if len(c.Traces) == 0 && c.Dir == "" {
		return errors.New("no trace files given")
	}

	a, err := g.openArchive()
	if err != nil {
		return err
	}
	defer closeArchive(a)

	proc := g.newProcess()
	defer proc.Teardown()
	p := tracker.New(proc)

	if c.Seed != "" {
		s, cp, err := loadCheckpoint(a, c.Seed)
		if err != nil {
			return errors.Wrap(err, "load seed checkpoint")
		}

		if _, err := p.Replace(tracker.FromSnapshot(s), 0); err != nil {
			return errors.Wrap(err, "seed coverage state").Str("checkpoint-id", cp.ID.String())
		}
	}

	for _, path := range c.Traces {
		if err := replayFile(p, path, func() (*os.File, error) { return os.Open(path) }); err != nil {
			return err
		}
	}

	if c.Dir != "" {
		d, err := dir.Open(c.Dir)
		if err != nil {
			return errors.Wrap(err, "open trace directory")
		}

		names, err := d.List(c.Pattern)
		if err != nil {
			return errors.Wrap(err, "list trace files")
		}

		for _, name := range names {
			name := name
			if err := replayFile(p, name, func() (*os.File, error) { return d.Open(name) }); err != nil {
				return err
			}
		}
	}

	s, err := p.Export(1)
	if err != nil {
		return errors.Wrap(err, "export coverage state")
	}

	cp, err := a.Save(c.Label, s)
	if err != nil {
		return errors.Wrap(err, "save checkpoint")
	}

	message.Infof("saved checkpoint with %d files", cp.Files)
	fmt.Println(cp.ID)
	return nil
}

func replayFile(p *tracker.Protocol, name string, open func() (*os.File, error)) error {
	f, err := open()
	if err != nil {
		return errors.Wrap(err, "open trace").Str("trace-file", name)
	}
	defer f.Close()

	events, err := trace.Parse(f)
	if err != nil {
		return errors.Wrap(err, "parse trace").Str("trace-file", name)
	}

	if err := trace.Replay(p, events); err != nil {
		if hint := replayHint(err); hint != "" {
			message.Warning(hint)
		}
		return errors.Wrap(err, "replay trace").Str("trace-file", name)
	}

	return nil
}

// replayHint подсказка пользователю по категории ошибки воспроизведения.
func replayHint(err error) string {
	switch {
	case coverr.Is(err, coverr.CodeFilenameMismatch):
		return "trace reuses a file number for another file name, traces of different builds cannot share a checkpoint"
	case coverr.Is(err, coverr.CodeAllocationFailure):
		return "coverage store limits exceeded, raise --max-file-slots or --max-line-slots"
	default:
		return ""
	}
}
