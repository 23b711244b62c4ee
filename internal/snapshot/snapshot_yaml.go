package snapshot

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/sirkon/errors"
)

type yamlFile struct {
	File   string   `yaml:"file"`
	Counts []uint64 `yaml:"counts,flow"`
}

// EncodeYAML запись слепка в человекочитаемом виде.
func EncodeYAML(dst io.Writer, s *Snapshot) error {
	files := make([]yamlFile, s.Len())
	for i := 0; i < s.Len(); i++ {
		files[i] = yamlFile{
			File:   s.Files[i].Name,
			Counts: cloneCounts(s.Files[i].Counts),
		}
	}

	data, err := yaml.Marshal(files)
	if err != nil {
		return errors.Wrap(err, "marshal files")
	}

	if _, err := dst.Write(data); err != nil {
		return errors.Wrap(err, "write marshaled files")
	}

	return nil
}

// DecodeYAML чтение слепка записанного EncodeYAML.
func DecodeYAML(src io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "read data")
	}

	var files []yamlFile
	if err := yaml.Unmarshal(data, &files); err != nil {
		return nil, errors.Wrap(err, "unmarshal files")
	}

	res := &Snapshot{
		Files: make([]File, len(files)),
	}
	for i, f := range files {
		res.Files[i] = File{
			Name:   f.File,
			Counts: cloneCounts(f.Counts),
		}
	}

	return res, nil
}
