package main

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"
)

type lsCommand struct{}

func (c *lsCommand) Run(g *globals) error {
	a, err := g.openArchive()
	if err != nil {
		return err
	}
	defer closeArchive(a)

	list, err := a.List()
	if err != nil {
		return errors.Wrap(err, "list checkpoints")
	}

	if len(list) == 0 {
		message.Info("no checkpoints")
		return nil
	}

	header := color.New(color.Bold)
	if g.colorize(os.Stdout) {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	tbl := table.New("ID", "Created", "Files", "Label").
		WithWriter(os.Stdout).
		WithHeaderFormatter(header.SprintfFunc())
	for _, cp := range list {
		tbl.AddRow(cp.ID, cp.Created.Format(time.RFC3339), cp.Files, cp.Label)
	}
	tbl.Print()

	return nil
}

type rmCommand struct {
	Refs []string `arg:"" help:"Checkpoints to delete: latest, ID or unique ID prefix."`
}

func (c *rmCommand) Run(g *globals) error {
	a, err := g.openArchive()
	if err != nil {
		return err
	}
	defer closeArchive(a)

	for _, ref := range c.Refs {
		id, err := a.Resolve(ref)
		if err != nil {
			return errors.Wrap(err, "resolve checkpoint").Str("checkpoint-ref", ref)
		}

		if err := a.Delete(id); err != nil {
			return errors.Wrap(err, "delete checkpoint")
		}

		message.Infof("deleted %s", id)
	}

	return nil
}
