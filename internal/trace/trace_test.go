package trace

import (
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
	"github.com/sirkon/linecov/internal/snapshot"
	"github.com/sirkon/linecov/internal/testlog"
	"github.com/sirkon/linecov/internal/tracker"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Event
		wantErr bool
	}{
		{
			name: "events",
			input: `# run 1
1 1 a.src

1	3	dir with spaces/b.src
  2 10 c.src  
`,
			want: []Event{
				{Pos: 2, File: 1, Line: 1, Name: "a.src"},
				{Pos: 4, File: 1, Line: 3, Name: "dir with spaces/b.src"},
				{Pos: 5, File: 2, Line: 10, Name: "c.src  "},
			},
		},
		{
			name:  "empty",
			input: "\n# nothing\n",
		},
		{
			name:    "missing name",
			input:   "1 2\n",
			wantErr: true,
		},
		{
			name:    "missing line",
			input:   "1\n",
			wantErr: true,
		},
		{
			name:    "bad file number",
			input:   "one 2 a.src\n",
			wantErr: true,
		},
		{
			name:    "bad line number",
			input:   "1 2.5 a.src\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Error("error expected")
					return
				}
				testlog.Log(t, err)
				if !coverr.Is(err, coverr.CodeInvalidInput) {
					t.Errorf("invalid input expected, got %v", err)
				}
				return
			}

			if err != nil {
				testlog.Error(t, errors.Wrap(err, "parse trace"))
				return
			}

			if !deepequal.Equal(tt.want, got) {
				t.Error("unexpected events")
				deepequal.SideBySide(t, "events", tt.want, got)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	events, err := Parse(strings.NewReader(`1 1 a.src
1 1 a.src
1 1 a.src
1 3 a.src
3 2 c.src
`))
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "parse trace"))
		return
	}

	p := tracker.New(tracker.NewProcess(nil))
	if err := Replay(p, events); err != nil {
		testlog.Error(t, errors.Wrap(err, "replay"))
		return
	}

	got, err := p.Export(1)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "export"))
		return
	}

	want := snapshot.New(
		snapshot.File{Name: "a.src", Counts: []uint64{3, 0, 1}},
		snapshot.File{Name: "", Counts: []uint64{}},
		snapshot.File{Name: "c.src", Counts: []uint64{0, 1}},
	)
	if !deepequal.Equal(want, got) {
		t.Error("unexpected state")
		deepequal.SideBySide(t, "snapshots", want, got)
	}
}

func TestReplayStopsOnFailure(t *testing.T) {
	events, err := Parse(strings.NewReader(`1 1 a.src
1 1 b.src
1 2 a.src
`))
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "parse trace"))
		return
	}

	p := tracker.New(tracker.NewProcess(nil))
	err = Replay(p, events)
	if !coverr.Is(err, coverr.CodeFilenameMismatch) {
		t.Errorf("filename mismatch expected, got %v", err)
		return
	}
	testlog.Log(t, err)

	got, err := p.Export(1)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "export"))
		return
	}

	want := snapshot.New(snapshot.File{Name: "a.src", Counts: []uint64{1}})
	if !deepequal.Equal(want, got) {
		t.Error("events after failure must not be applied")
		deepequal.SideBySide(t, "snapshots", want, got)
	}
}

func TestReplayKeepsTrailingWhitespace(t *testing.T) {
	events, err := Parse(strings.NewReader("1 1 a.src\r\n1 2 a.src \n"))
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "parse trace"))
		return
	}

	want := []Event{
		{Pos: 1, File: 1, Line: 1, Name: "a.src"},
		{Pos: 2, File: 1, Line: 2, Name: "a.src "},
	}
	if !deepequal.Equal(want, events) {
		t.Error("unexpected events")
		deepequal.SideBySide(t, "events", want, events)
		return
	}

	p := tracker.New(tracker.NewProcess(nil))
	if err := Replay(p, events); !coverr.Is(err, coverr.CodeFilenameMismatch) {
		t.Errorf("names differing by trailing space must not collapse, got %v", err)
	}
}

func TestReplayRejectsZeroNumbers(t *testing.T) {
	p := tracker.New(tracker.NewProcess(nil))
	err := Replay(p, []Event{{Pos: 1, File: 1, Line: 0, Name: "a.src"}})
	if !coverr.Is(err, coverr.CodeInvalidInput) {
		t.Errorf("invalid input expected, got %v", err)
	}
}
