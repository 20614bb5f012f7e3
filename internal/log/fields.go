package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldSuccess     = "success"
	FieldDuration    = "duration_ms"
	FieldBackend     = "backend"
	FieldKey         = "key"
	FieldBytes       = "bytes"
	FieldVersion     = "version"
	FieldFromVersion = "from_version"
	FieldShape       = "shape"
	FieldFile        = "file"
	FieldFormat      = "format"
	FieldRecords     = "records"
	FieldGoals       = "goals"
	FieldPayouts     = "payouts"
	FieldAdded       = "added"
	FieldTotal       = "total_earnings"
	FieldSeverity    = "severity"
	FieldKind        = "kind"
	FieldDBPath      = "db_path"
	FieldDataDir     = "data_dir"
	FieldQuota       = "quota_bytes"
	FieldRows        = "rows"
	FieldDir         = "dir"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentStore    = "store"
	ComponentImporter = "importer"
	ComponentExport   = "export"
	ComponentStorage  = "storage"
	ComponentBackend  = "backend"
	ComponentAMQP     = "amqp"
	ComponentSheets   = "sheets"
	ComponentNotify   = "notify"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpMigrate  = "migrate"
	OpImport   = "import"
	OpExport   = "export"
	OpMerge    = "merge"
	OpClear    = "clear"
	OpValidate = "validate"
	OpParse    = "parse"
	OpCreate   = "create"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeStorage       = "storage_error"
	ErrorTypeCorrupt       = "corrupt_data_error"
	ErrorTypeFormat        = "format_error"
	ErrorTypeIO            = "io_error"
	ErrorTypeNetwork       = "network_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category
func (f LogFields) WithErrorType(kind string) LogFields {
	f[FieldErrorType] = kind
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithStorage adds persistence handle fields
func (f LogFields) WithStorage(backend, key string, size int) LogFields {
	f[FieldBackend] = backend
	f[FieldKey] = key
	f[FieldBytes] = size
	return f
}

// WithCounts adds collection sizes of a document
func (f LogFields) WithCounts(records, goals, payouts int) LogFields {
	f[FieldRecords] = records
	f[FieldGoals] = goals
	f[FieldPayouts] = payouts
	return f
}

// WithImport adds import source fields
func (f LogFields) WithImport(file, format string, added int) LogFields {
	f[FieldFile] = file
	f[FieldFormat] = format
	f[FieldAdded] = added
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
