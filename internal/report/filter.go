package report

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/sirkon/errors"
)

// Filter отбор сводок по выражению над полями FileStats, например
// `Ratio < 0.5 && Lines > 10`.
type Filter struct {
	src string
	prg *vm.Program
}

// CompileFilter компиляция выражения отбора. Выражение должно возвращать
// булево значение.
func CompileFilter(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(FileStats{}), expr.AsBool())
	if err != nil {
		return nil, errors.Wrap(err, "compile filter expression").Str("filter", src)
	}

	return &Filter{
		src: src,
		prg: prg,
	}, nil
}

// Match проверка сводки. Пустой фильтр пропускает всё.
func (f *Filter) Match(st FileStats) (bool, error) {
	if f == nil {
		return true, nil
	}

	res, err := expr.Run(f.prg, st)
	if err != nil {
		return false, errors.Wrap(err, "run filter expression").
			Str("filter", f.src).
			Str("file-name", st.Name)
	}

	return res.(bool), nil
}

// Apply сводки прошедшие отбор, порядок сохраняется.
func (f *Filter) Apply(stats []FileStats) ([]FileStats, error) {
	res := make([]FileStats, 0, len(stats))
	for _, st := range stats {
		ok, err := f.Match(st)
		if err != nil {
			return nil, err
		}

		if ok {
			res = append(res, st)
		}
	}

	return res, nil
}
