package plan

import "github.com/quilldb/quill/catalog"

// DDLJob is the closed set of catalog/storage mutations a DDL Plan node can
// perform.
type DDLJob interface{ ddlJob() }

// CreateSchemaJob creates a new schema.
type CreateSchemaJob struct{ Name string }

func (CreateSchemaJob) ddlJob() {}

// DropSchemasJob drops one or more schemas.
type DropSchemasJob struct{ Names []string }

func (DropSchemasJob) ddlJob() {}

// CreateTableJob creates a new table within Schema.
type CreateTableJob struct {
	Schema string
	Table  *catalog.TableDefinition
}

func (CreateTableJob) ddlJob() {}

// DropTablesJob drops one or more qualified tables.
type DropTablesJob struct{ Tables []catalog.QualifiedTable }

func (DropTablesJob) ddlJob() {}

// ShowTablesJob lists the tables of one schema.
type ShowTablesJob struct{ Schema string }

func (ShowTablesJob) ddlJob() {}
