package logging

// Standardized field names for structured logging.
const (
	FieldRunID      = "run_id"
	FieldWorkbook   = "workbook"
	FieldSheet      = "sheet"
	FieldUnit       = "unit"
	FieldMonth      = "month"
	FieldCount      = "count"
	FieldFormat     = "format"
	FieldOutputFile = "output_file"
	FieldOperation  = "operation"
	FieldSource     = "source"
	FieldError      = "error"
	FieldTotalPaid  = "total_paid"
	FieldTotalOwed  = "total_owed"
	FieldDifference = "difference"
)
