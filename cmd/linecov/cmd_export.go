package main

import (
	"io"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/snapshot"
)

type exportCommand struct {
	Ref    string `arg:"" optional:"" default:"latest" help:"Checkpoint: latest, ID or unique ID prefix."`
	Output string `short:"o" default:"-" help:"Output file, - for standard output."`
}

func (c *exportCommand) Run(g *globals) error {
	format, err := g.formatFor(c.Output)
	if err != nil {
		return errors.Wrap(err, "detect snapshot format")
	}

	a, err := g.openArchive()
	if err != nil {
		return err
	}
	defer closeArchive(a)

	s, _, err := loadCheckpoint(a, c.Ref)
	if err != nil {
		return err
	}

	return writeOutput(c.Output, func(w io.Writer) error {
		if err := snapshot.Encode(w, s, format); err != nil {
			return errors.Wrap(err, "encode snapshot").Str("format", format.String())
		}

		return nil
	})
}
