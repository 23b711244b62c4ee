package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/linestore"
	"github.com/sirkon/message"
)

type cliArgs struct {
	globals `embed:""`

	Replay replayCommand `cmd:"" help:"Replay execution traces and save the accumulated coverage as a checkpoint."`
	Import importCommand `cmd:"" help:"Save a snapshot file as a checkpoint."`
	Export exportCommand `cmd:"" help:"Write a checkpoint into a snapshot file."`
	Ls     lsCommand     `cmd:"" help:"List checkpoints."`
	Rm     rmCommand     `cmd:"" help:"Delete checkpoints."`
	Show   showCommand   `cmd:"" help:"Show per file coverage summary of a checkpoint."`
	Lcov   lcovCommand   `cmd:"" help:"Write a checkpoint as an LCOV tracefile."`
	Diff   diffCommand   `cmd:"" help:"Show difference between two checkpoints."`
}

func main() {
	var cli cliArgs
	ctx := kong.Parse(
		&cli,
		kong.Name("linecov"),
		kong.Description("Line coverage accumulator: replays execution traces, keeps checkpoints and builds reports."),
		kong.UsageOnError(),
		kong.Configuration(yamlConfig, defaultConfigPaths()...),
		cliVars(),
	)

	if err := ctx.Run(&cli.globals); err != nil {
		message.Critical(errors.Wrap(err, "run "+ctx.Command()))
	}
}

func cliVars() kong.Vars {
	return kong.Vars{
		"archive":        defaultArchivePath(),
		"max_file_slots": strconv.Itoa(linestore.DefaultMaxFileSlots),
		"max_line_slots": strconv.Itoa(linestore.DefaultMaxLineSlots),
	}
}

func defaultConfigPaths() []string {
	return []string{
		"~/.config/linecov/config.yaml",
		".linecov.yaml",
	}
}

func defaultArchivePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".linecov", "archive.db")
	}

	return filepath.Join(dir, "linecov", "archive.db")
}
