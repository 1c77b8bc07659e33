package storage

import (
	"gopkg.in/yaml.v3"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

const yamlHeader = `#
# This file is automatically generated by formspecgen and is not read back by
# the tool; it is kept for comparing element definitions across lua_api
# versions.
#

`

// WriteYAML writes the element table as an annotated YAML dump
func WriteYAML(path string, table types.ElementTable) error {
	data, err := yaml.Marshal(table)
	if err != nil {
		return err
	}
	return writeFile(path, append([]byte(yamlHeader), data...))
}
