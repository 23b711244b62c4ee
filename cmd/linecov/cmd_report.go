package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/report"
	"github.com/sirkon/message"
)

type showCommand struct {
	Ref    string `arg:"" optional:"" default:"latest" help:"Checkpoint: latest, ID or unique ID prefix."`
	Filter string `help:"Expression selecting files, e.g. 'Ratio < 0.5 && Lines > 10'."`
}

func (c *showCommand) Run(g *globals) error {
	var filter *report.Filter
	if c.Filter != "" {
		var err error
		filter, err = report.CompileFilter(c.Filter)
		if err != nil {
			return err
		}
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

	stats, err := filter.Apply(report.Summarize(s))
	if err != nil {
		return errors.Wrap(err, "filter files")
	}

	report.WriteSummary(os.Stdout, stats, g.colorize(os.Stdout))
	return nil
}

type lcovCommand struct {
	Ref      string `arg:"" optional:"" default:"latest" help:"Checkpoint: latest, ID or unique ID prefix."`
	Output   string `short:"o" default:"-" help:"Output file, - for standard output."`
	TestName string `help:"Test name of the tracefile records."`
}

func (c *lcovCommand) Run(g *globals) error {
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
		if err := report.WriteLCOV(w, c.TestName, s); err != nil {
			return errors.Wrap(err, "write lcov")
		}

		return nil
	})
}

type diffCommand struct {
	From  string `arg:"" help:"Base checkpoint."`
	To    string `arg:"" optional:"" default:"latest" help:"Compared checkpoint."`
	Check bool   `help:"Fail when checkpoints differ."`
}

func (c *diffCommand) Run(g *globals) error {
	a, err := g.openArchive()
	if err != nil {
		return err
	}
	defer closeArchive(a)

	from, _, err := loadCheckpoint(a, c.From)
	if err != nil {
		return errors.Wrap(err, "load base checkpoint")
	}

	to, _, err := loadCheckpoint(a, c.To)
	if err != nil {
		return errors.Wrap(err, "load compared checkpoint")
	}

	text, differs := report.Diff(from, to)
	if !differs {
		message.Info("checkpoints are identical")
		return nil
	}

	printDiff(os.Stdout, text, g.colorize(os.Stdout))
	if c.Check {
		return errors.New("checkpoints differ")
	}

	return nil
}

func printDiff(w io.Writer, text string, colorize bool) {
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	if colorize {
		added.EnableColor()
		removed.EnableColor()
	} else {
		added.DisableColor()
		removed.DisableColor()
	}

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case len(line) > 0 && line[0] == '+':
			added.Fprintln(w, line)
		case len(line) > 0 && line[0] == '-':
			removed.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}
