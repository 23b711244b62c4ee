package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
	"github.com/sirkon/linecov/internal/snapshot"
	"github.com/sirkon/linecov/internal/testlog"
)

func parseArgs(t *testing.T, config string, args ...string) *cliArgs {
	t.Helper()

	var opts []kong.Option
	opts = append(opts, cliVars(), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	if config != "" {
		p := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(p, []byte(config), 0o644); err != nil {
			testlog.Error(t, errors.Wrap(err, "write config"))
			t.FailNow()
		}
		opts = append(opts, kong.Configuration(yamlConfig, p))
	} else {
		opts = append(opts, kong.Configuration(yamlConfig))
	}

	var cli cliArgs
	parser, err := kong.New(&cli, opts...)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "build parser"))
		t.FailNow()
	}

	if _, err := parser.Parse(args); err != nil {
		testlog.Error(t, errors.Wrap(err, "parse arguments"))
		t.FailNow()
	}

	return &cli
}

func TestConfigDefaults(t *testing.T) {
	cli := parseArgs(t, "", "ls")

	if cli.Color != colorAuto {
		t.Errorf("color %q expected, got %q", colorAuto, cli.Color)
	}
	if cli.MaxFileSlots != 1<<20 || cli.MaxLineSlots != 1<<25 {
		t.Errorf("default limits expected, got %d and %d", cli.MaxFileSlots, cli.MaxLineSlots)
	}
	if cli.Archive == "" {
		t.Error("archive path must have a default")
	}
}

func TestConfigFile(t *testing.T) {
	config := `archive: /tmp/linecov-test/archive.db
color: never
limits:
  max_file_slots: 16
  max_line_slots: 128
`
	cli := parseArgs(t, config, "ls")

	if cli.Archive != "/tmp/linecov-test/archive.db" {
		t.Errorf("archive path from config expected, got %q", cli.Archive)
	}
	if cli.Color != colorNever {
		t.Errorf("color %q expected, got %q", colorNever, cli.Color)
	}
	if cli.MaxFileSlots != 16 || cli.MaxLineSlots != 128 {
		t.Errorf("limits from config expected, got %d and %d", cli.MaxFileSlots, cli.MaxLineSlots)
	}

	cli = parseArgs(t, config, "--color=always", "--max-file-slots=3", "ls")
	if cli.Color != colorAlways || cli.MaxFileSlots != 3 {
		t.Errorf("flags must override config, got color %q and %d file slots", cli.Color, cli.MaxFileSlots)
	}
}

func TestFlattenConfig(t *testing.T) {
	got := flattenConfig(map[string]interface{}{
		"color": "never",
		"limits": map[string]interface{}{
			"max_file_slots": 10,
			"color":          "always",
		},
	})

	if got["color"] != "never" {
		t.Errorf("top level key must win, got %q", got["color"])
	}
	if got["max_file_slots"] != "10" {
		t.Errorf("section key expected, got %q", got["max_file_slots"])
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		path     string
		want     snapshot.Format
		wantErr  bool
	}{
		{
			name: "yaml extension",
			path: "cov.yaml",
			want: snapshot.FormatYAML,
		},
		{
			name: "yml extension",
			path: "COV.YML",
			want: snapshot.FormatYAML,
		},
		{
			name: "msgpack extension",
			path: "cov.msgpack",
			want: snapshot.FormatMsgpack,
		},
		{
			name: "binary by default",
			path: "-",
			want: snapshot.FormatBinary,
		},
		{
			name:     "explicit wins",
			explicit: "msgpack",
			path:     "cov.yaml",
			want:     snapshot.FormatMsgpack,
		},
		{
			name:     "unknown explicit",
			explicit: "xml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &globals{Format: tt.explicit}
			got, err := g.formatFor(tt.path)
			if tt.wantErr {
				if !errors.Is(err, snapshot.ErrorUnknownFormat) {
					t.Errorf("unknown format error expected, got %v", err)
				}
				return
			}

			if err != nil {
				testlog.Error(t, errors.Wrap(err, "detect format"))
				return
			}

			if got != tt.want {
				t.Errorf("format %s expected, got %s", tt.want, got)
			}
		})
	}
}

func TestColorize(t *testing.T) {
	if !(&globals{Color: colorAlways}).colorize(os.Stdout) {
		t.Error("always must colorize")
	}
	if (&globals{Color: colorNever}).colorize(os.Stdout) {
		t.Error("never must not colorize")
	}
}

func TestReplayHint(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{
			name:     "filename mismatch",
			err:      errors.Wrap(coverr.NewFilenameMismatch(), "replay event").Int("trace-line", 2),
			wantHint: true,
		},
		{
			name:     "allocation failure",
			err:      errors.Wrap(coverr.NewAllocationFailure(), "replay event"),
			wantHint: true,
		},
		{
			name: "invalid input",
			err:  coverr.NewInvalidInput("value is NaN"),
		},
		{
			name: "plain error",
			err:  errors.New("read failure"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := replayHint(tt.err); (got != "") != tt.wantHint {
				t.Errorf("hint presence %v expected, got %q", tt.wantHint, got)
			}
		})
	}
}
