package snapshot

import (
	"io"

	"github.com/sirkon/errors"
	"github.com/vmihailenco/msgpack/v5"
)

type msgpackFile struct {
	Name   string   `msgpack:"name"`
	Counts []uint64 `msgpack:"counts"`
}

// EncodeMsgpack запись слепка в формате msgpack.
func EncodeMsgpack(dst io.Writer, s *Snapshot) error {
	files := make([]msgpackFile, s.Len())
	for i := 0; i < s.Len(); i++ {
		files[i] = msgpackFile{
			Name:   s.Files[i].Name,
			Counts: s.Files[i].Counts,
		}
	}

	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)

	enc.Reset(dst)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(files); err != nil {
		return errors.Wrap(err, "encode files")
	}

	return nil
}

// DecodeMsgpack чтение слепка записанного EncodeMsgpack.
func DecodeMsgpack(src io.Reader) (*Snapshot, error) {
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)

	dec.Reset(src)
	var files []msgpackFile
	if err := dec.Decode(&files); err != nil {
		return nil, errors.Wrap(err, "decode files")
	}

	res := &Snapshot{
		Files: make([]File, len(files)),
	}
	for i, f := range files {
		res.Files[i] = File{
			Name:   f.Name,
			Counts: cloneCounts(f.Counts),
		}
	}

	return res, nil
}
