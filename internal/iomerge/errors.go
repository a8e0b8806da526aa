package iomerge

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndwca/pkg/errcode"
)

func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: pool is nil, Connect was not called", fn),
	}
}

func TablesLookupError(err error) error {
	msg := "Cannot find taxon tables to merge"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MergeTablesLookupError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot look up taxon tables: %w", fn, err),
	}
}

func SeedError(table string, err error) error {
	msg := "Cannot seed table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaSeedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot seed %s: %w", fn, table, err),
	}
}

func LabelsError(table string, err error) error {
	msg := "Cannot fill labels in table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MergeLabelsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot fill labels in %s: %w",
			fn, table, err),
	}
}

func TempTableError(table string, err error) error {
	msg := "Cannot create scratch table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MergeTempTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create scratch table %s: %w",
			fn, table, err),
	}
}

func InsertError(table string, err error) error {
	msg := "Cannot copy table <em>%s</em> into cross_taxons"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MergeInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot merge %s into cross_taxons: %w",
			fn, table, err),
	}
}

func UpdateError(column string, err error) error {
	msg := "Cannot resolve <em>%s</em> references in cross_taxons"
	vars := []any{column}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MergeUpdateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot resolve %s in cross_taxons: %w",
			fn, column, err),
	}
}
