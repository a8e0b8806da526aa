package iobuild

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/pkg/errcode"
)

func NoHeadersError(path string) error {
	msg := "Input <em>%s</em> has no header line to derive columns from"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildNoHeadersError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no headers in %s", fn, path),
	}
}

func CreateTableError(table string, err error) error {
	msg := "Cannot create table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCreateTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create table %s: %w",
			fn, table, err),
	}
}

func CreateIndexError(table string, err error) error {
	msg := "Cannot create index on <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCreateIndexError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create index on %s: %w",
			fn, table, err),
	}
}

func ExportError(id string, offset int64, err error) error {
	msg := "Cannot re-read row for taxon <em>%s</em> at byte %d"
	vars := []any{id, offset}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildExportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot export %s at %d: %w",
			fn, id, offset, err),
	}
}

func BatchError(failed int, err error) error {
	msg := "<em>%d</em> load batches failed"
	vars := []any{failed}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildBatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %d batches failed: %w",
			fn, failed, err),
	}
}

func ReportError(path string, err error) error {
	msg := "Cannot write report file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildReportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write %s: %w",
			fn, path, err),
	}
}
