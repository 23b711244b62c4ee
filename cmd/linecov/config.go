package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/sirkon/errors"
)

// yamlConfig загрузка конфигурации из YAML. Ключи это имена флагов
// в snake_case, они могут быть сгруппированы в разделы первого уровня,
// например
//
//	archive: /var/lib/linecov/archive.db
//	color: never
//	limits:
//	  max_file_slots: 4096
func yamlConfig(r io.Reader) (kong.Resolver, error) {
	var raw map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode yaml config")
	}

	values := flattenConfig(raw)
	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
		v, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]
		if !ok {
			return nil, nil
		}

		return v, nil
	}

	return f, nil
}

func flattenConfig(raw map[string]interface{}) map[string]string {
	res := map[string]string{}
	for _, v := range raw {
		section, ok := v.(map[string]interface{})
		if !ok {
			continue
		}

		for name, item := range section {
			res[name] = fmt.Sprint(item)
		}
	}

	// Ключи верхнего уровня приоритетнее ключей разделов.
	for key, v := range raw {
		if _, ok := v.(map[string]interface{}); ok {
			continue
		}

		res[key] = fmt.Sprint(v)
	}

	return res
}
