package dir

import (
	"os"
	"path/filepath"

	"github.com/sirkon/errors"
)

// DefaultPattern шаблон имён файлов трасс по умолчанию.
const DefaultPattern = "*.trace"

// Dir директория с файлами трасс исполнения.
type Dir struct {
	path string
}

// Open открытие существующей директории.
func Open(p string) (*Dir, error) {
	stat, err := os.Stat(p)
	if err != nil {
		return nil, errors.Wrap(err, "check path").Str("trace-dir", p)
	}

	if !stat.IsDir() {
		return nil, errors.Newf("'%s' exists and it is not a directory", p)
	}

	return &Dir{
		path: p,
	}, nil
}

// Path путь к директории.
func (d *Dir) Path() string {
	return d.path
}

// List имена файлов директории удовлетворяющих шаблону в лексикографическом
// порядке. Директории исключаются, пустой шаблон заменяется DefaultPattern.
func (d *Dir) List(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, errors.Wrap(err, "check pattern").Str("pattern", pattern)
	}

	files, err := os.ReadDir(d.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory '%s'", d.path)
	}

	var res []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ok, _ := filepath.Match(pattern, file.Name())
		if !ok {
			continue
		}

		res = append(res, file.Name())
	}

	return res, nil
}

// Open открытие файла из директории на чтение.
func (d *Dir) Open(name string) (*os.File, error) {
	res, err := os.Open(filepath.Join(d.path, name))
	if err != nil {
		return nil, errors.Wrap(err, "open trace file").Str("trace-file", name)
	}

	return res, nil
}
