package iodwca

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/pkg/errcode"
)

func NotFoundError(path string, err error) error {
	msg := "Input file <em>%s</em> does not exist or is not a file"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: input %s not found: %w",
			fn, path, err),
	}
}

func OpenError(path string, err error) error {
	msg := "Cannot open <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, path, err),
	}
}

func ReadError(path string, err error) error {
	msg := "Cannot read from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func SeekError(path string, offset int64, err error) error {
	msg := "Cannot reposition <em>%s</em> to byte %d"
	vars := []any{path, offset}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputSeekError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot seek %s to %d: %w",
			fn, path, offset, err),
	}
}

func DownloadError(url string, err error) error {
	msg := "Cannot download <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	if err == nil {
		err = fmt.Errorf("unexpected HTTP status")
	}
	return &gn.Error{
		Code: errcode.InputDownloadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot download %s: %w", fn, url, err),
	}
}

func ArchiveError(path string, err error) error {
	msg := "Cannot extract archive <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputArchiveError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot extract %s: %w",
			fn, path, err),
	}
}

func NoCoreError(path string) error {
	msg := "Archive <em>%s</em> has no taxon core file"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputNoCoreError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no taxon core in %s", fn, path),
	}
}
