package main

import (
	"bufio"
	"fmt"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/snapshot"
	"github.com/sirkon/linecov/internal/tracker"
	"github.com/sirkon/message"
)

type importCommand struct {
	Path  string `arg:"" help:"Snapshot file, - for standard input."`
	Label string `help:"Label of the new checkpoint."`
}

func (c *importCommand) Run(g *globals) error {
	format, err := g.formatFor(c.Path)
	if err != nil {
		return errors.Wrap(err, "detect snapshot format")
	}

	in, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	s, err := snapshot.Decode(bufio.NewReader(in), format)
	if err != nil {
		return errors.Wrap(err, "decode snapshot").Str("format", format.String())
	}

	// Слепок проходит через хранилище, чтобы к нему применились ограничения.
	proc := g.newProcess()
	defer proc.Teardown()
	p := tracker.New(proc)

	s, err = p.Replace(tracker.FromSnapshot(s), 1)
	if err != nil {
		return errors.Wrap(err, "load snapshot into coverage store")
	}

	a, err := g.openArchive()
	if err != nil {
		return err
	}
	defer closeArchive(a)

	cp, err := a.Save(c.Label, s)
	if err != nil {
		return errors.Wrap(err, "save checkpoint")
	}

	message.Infof("imported %d files", cp.Files)
	fmt.Println(cp.ID)
	return nil
}
