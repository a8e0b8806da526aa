package iosources

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/pkg/errcode"
)

// SourcesConfigError is returned when sources.yaml cannot be loaded.
func SourcesConfigError(path string, err error) error {
	msg := `Cannot load sources configuration from <em>%s</em>

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Invalid source entry

Remove the file to regenerate the default registry on the next run.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildSourcesConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load sources config %s: %w",
			fn, path, err),
	}
}
