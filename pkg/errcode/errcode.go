package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBCreateDatabaseError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBCreateTableError
	DBCreateIndexError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaSeedError

	// Input errors
	InputNotFoundError
	InputOpenError
	InputReadError
	InputSeekError
	InputDownloadError
	InputArchiveError
	InputNoCoreError

	// Build errors
	BuildSourcesConfigError
	BuildNoTableError
	BuildNoHeadersError
	BuildExportError
	BuildBatchError
	BuildReportError

	// Merge errors
	MergeTablesLookupError
	MergeLabelsError
	MergeTempTableError
	MergeInsertError
	MergeUpdateError
)
