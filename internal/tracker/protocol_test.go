package tracker

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
	"github.com/sirkon/linecov/internal/linestore"
	"github.com/sirkon/linecov/internal/snapshot"
	"github.com/sirkon/linecov/internal/testlog"
	"github.com/sirkon/linecov/internal/tracker/internal/mocks"
)

func TestProtocolRecord(t *testing.T) {
	p := New(NewProcess(nil))

	got, err := p.Record(0, "a.c", 2, 1)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "record first hit"))
		return
	}

	want := snapshot.New(snapshot.File{Name: "a.c", Counts: []uint64{0, 0, 1}})
	if !deepequal.Equal(want, got) {
		t.Error("unexpected state after first hit")
		deepequal.SideBySide(t, "snapshots", want, got)
	}

	got, err = p.Record(0, "a.c", 0, 0)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "record second hit"))
		return
	}
	if got != nil {
		t.Error("no state must be returned without outputs requested")
	}

	got, err = p.Export(1)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "export"))
		return
	}

	want = snapshot.New(snapshot.File{Name: "a.c", Counts: []uint64{1, 0, 1}})
	if !deepequal.Equal(want, got) {
		t.Error("unexpected exported state")
		deepequal.SideBySide(t, "snapshots", want, got)
	}
}

func TestProtocolErrors(t *testing.T) {
	tests := []struct {
		name string
		do   func(p *Protocol) error
		code coverr.ErrorCode
	}{
		{
			name: "record too many outputs",
			do: func(p *Protocol) error {
				_, err := p.Record(0, "a.c", 0, 2)
				return err
			},
			code: coverr.CodeInvalidUsage,
		},
		{
			name: "replace too many outputs",
			do: func(p *Protocol) error {
				_, err := p.Replace(Empty(), 2)
				return err
			},
			code: coverr.CodeInvalidUsage,
		},
		{
			name: "export too many outputs",
			do: func(p *Protocol) error {
				_, err := p.Export(3)
				return err
			},
			code: coverr.CodeInvalidUsage,
		},
		{
			name: "negative outputs",
			do: func(p *Protocol) error {
				_, err := p.Export(-1)
				return err
			},
			code: coverr.CodeInvalidUsage,
		},
		{
			name: "filename mismatch",
			do: func(p *Protocol) error {
				_, err := p.Record(0, "b.c", 0, 0)
				return err
			},
			code: coverr.CodeFilenameMismatch,
		},
		{
			name: "negative line",
			do: func(p *Protocol) error {
				_, err := p.Record(0, "a.c", -1, 0)
				return err
			},
			code: coverr.CodeInvalidInput,
		},
		{
			name: "invalid replacement",
			do: func(p *Protocol) error {
				_, err := p.Replace(FromExternal(snapshot.External{
					Keys: []string{"a.c"},
				}), 0)
				return err
			},
			code: coverr.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(NewProcess(nil))
			if _, err := p.Record(0, "a.c", 0, 0); err != nil {
				testlog.Error(t, errors.Wrap(err, "seed state"))
				return
			}

			err := tt.do(p)
			if err == nil {
				t.Error("error expected")
				return
			}
			testlog.Log(t, err)

			if code := coverr.AsCode(err); code != tt.code {
				t.Errorf("error code %s expected, got %s", tt.code, code)
			}
		})
	}
}

func TestProtocolNoMutationOnBadArity(t *testing.T) {
	p := New(NewProcess(nil))
	if _, err := p.Record(0, "a.c", 0, 0); err != nil {
		testlog.Error(t, errors.Wrap(err, "seed state"))
		return
	}

	if _, err := p.Record(0, "a.c", 0, 2); err == nil {
		t.Error("error expected for record")
	}
	if _, err := p.Replace(Empty(), 2); err == nil {
		t.Error("error expected for replace")
	}

	got, err := p.Export(1)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "export"))
		return
	}

	want := snapshot.New(snapshot.File{Name: "a.c", Counts: []uint64{1}})
	if !deepequal.Equal(want, got) {
		t.Error("state must not change")
		deepequal.SideBySide(t, "snapshots", want, got)
	}
}

func TestProtocolReplace(t *testing.T) {
	p := New(NewProcess(nil))
	if _, err := p.Record(3, "z.c", 4, 0); err != nil {
		testlog.Error(t, errors.Wrap(err, "seed state"))
		return
	}

	src := snapshot.New(
		snapshot.File{Name: "x.c", Counts: []uint64{1, 2}},
		snapshot.File{Name: "", Counts: []uint64{}},
		snapshot.File{Name: "y.c", Counts: []uint64{0, 0, 5}},
	)
	got, err := p.Replace(FromSnapshot(src), 1)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "replace"))
		return
	}

	if !deepequal.Equal(src, got) {
		t.Error("replaced state differs")
		deepequal.SideBySide(t, "snapshots", src, got)
	}

	// Восстановленные записи привязаны к именам, включая пустое.
	if _, err := p.Record(1, "w.c", 0, 0); !coverr.Is(err, coverr.CodeFilenameMismatch) {
		t.Errorf("filename mismatch expected for restored empty name, got %v", err)
	}
	if _, err := p.Record(0, "y.c", 0, 0); !coverr.Is(err, coverr.CodeFilenameMismatch) {
		t.Errorf("filename mismatch expected, got %v", err)
	}
	if _, err := p.Record(0, "x.c", 1, 0); err != nil {
		testlog.Error(t, errors.Wrap(err, "record restored file"))
		return
	}

	got, err = p.Replace(Empty(), 1)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "replace with empty"))
		return
	}
	if got.Len() != 0 {
		t.Errorf("empty state expected, got %d files", got.Len())
	}
}

func TestProtocolReplaceFailureClears(t *testing.T) {
	p := New(NewProcess(nil))
	if _, err := p.Record(0, "a.c", 0, 0); err != nil {
		testlog.Error(t, errors.Wrap(err, "seed state"))
		return
	}

	_, err := p.Replace(FromExternal(snapshot.External{
		Keys:      []string{"a.c"},
		LineCount: [][]float64{{1.5}},
	}), 0)
	if !coverr.Is(err, coverr.CodeInvalidInput) {
		t.Errorf("invalid input expected, got %v", err)
		return
	}

	got, err := p.Export(1)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "export"))
		return
	}
	if got.Len() != 0 {
		t.Errorf("store must be empty after failed replace, got %d files", got.Len())
	}
}

func TestProtocolAllocationFailure(t *testing.T) {
	p := New(NewProcess(nil, linestore.WithMaxFileSlots(4), linestore.WithMaxLineSlots(8)))

	if _, err := p.Record(10, "a.c", 0, 0); !coverr.Is(err, coverr.CodeAllocationFailure) {
		t.Errorf("allocation failure expected for file index, got %v", err)
	}
	if _, err := p.Record(0, "a.c", 100, 0); !coverr.Is(err, coverr.CodeAllocationFailure) {
		t.Errorf("allocation failure expected for line index, got %v", err)
	}
}

func TestProtocolLogging(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewLoggerMock(ctrl)

	gomock.InOrder(
		log.EXPECT().StoreInitialized(),
		log.EXPECT().OperationFailed(OpRecord, gomock.Any()),
		log.EXPECT().StateReplaced(2),
		log.EXPECT().OperationFailed(OpExport, gomock.Any()),
		log.EXPECT().StoreReleased(2),
		log.EXPECT().StoreInitialized(),
		log.EXPECT().StoreReleased(0),
	)

	proc := NewProcess(log)
	p := New(proc)

	if _, err := p.Record(0, "a.c", 0, 0); err != nil {
		testlog.Error(t, errors.Wrap(err, "record"))
		return
	}
	if _, err := p.Record(0, "b.c", 0, 0); err == nil {
		t.Error("filename mismatch expected")
	}

	src := snapshot.New(
		snapshot.File{Name: "a.c", Counts: []uint64{1}},
		snapshot.File{Name: "b.c", Counts: []uint64{2}},
	)
	if _, err := p.Replace(FromSnapshot(src), 0); err != nil {
		testlog.Error(t, errors.Wrap(err, "replace"))
		return
	}
	if _, err := p.Export(2); err == nil {
		t.Error("invalid usage expected")
	}

	proc.Teardown()
	proc.Teardown()
	if proc.Initialized() {
		t.Error("process must not hold a store after teardown")
	}

	if _, err := p.Export(0); err != nil {
		testlog.Error(t, errors.Wrap(err, "export after teardown"))
		return
	}
	proc.Teardown()
}
