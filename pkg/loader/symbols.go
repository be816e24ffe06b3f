package loader

// Exported entry point names.
const (
	SymABIVersion = "modbridge_abi_version"

	SymCalculatorNew        = "mathlib_calculator_new"
	SymCalculatorAdd        = "mathlib_calculator_add"
	SymCalculatorMultiply   = "mathlib_calculator_multiply"
	SymCalculatorFactorial  = "mathlib_calculator_factorial"
	SymCalculatorMaxOfThree = "mathlib_calculator_max_of_three"
	SymCalculatorValid      = "mathlib_calculator_valid"
	SymCalculatorFree       = "mathlib_calculator_free"

	SymProcessorNew       = "stringlib_processor_new"
	SymProcessorReverse   = "stringlib_processor_reverse"
	SymProcessorConcat    = "stringlib_processor_concat"
	SymProcessorToUpper   = "stringlib_processor_to_upper"
	SymProcessorWordCount = "stringlib_processor_word_count"
	SymProcessorValid     = "stringlib_processor_valid"
	SymProcessorFree      = "stringlib_processor_free"
	SymStringFree         = "stringlib_free_string"

	SymLoggerNew    = "common_logger_new"
	SymLoggerLog    = "common_logger_log"
	SymLoggerValid  = "common_logger_valid"
	SymLoggerFree   = "common_logger_free"
	SymToUpper      = "common_to_upper"
	SymMax          = "common_max"
	SymMin          = "common_min"
	SymCommonFree   = "common_free_string"
)

// Module groups the entry points of one module.
type Module struct {
	Name     string
	Required []string
	Optional []string
}

// Modules lists every module and its entry points.
var Modules = []Module{
	{
		Name: "mathlib",
		Required: []string{
			SymCalculatorNew, SymCalculatorAdd, SymCalculatorMultiply,
			SymCalculatorFactorial, SymCalculatorMaxOfThree, SymCalculatorFree,
		},
		Optional: []string{SymCalculatorValid},
	},
	{
		Name: "stringlib",
		Required: []string{
			SymProcessorNew, SymProcessorReverse, SymProcessorConcat,
			SymProcessorToUpper, SymProcessorWordCount, SymProcessorFree, SymStringFree,
		},
		Optional: []string{SymProcessorValid},
	},
	{
		Name: "common",
		Required: []string{
			SymLoggerNew, SymLoggerLog, SymLoggerFree,
			SymToUpper, SymMax, SymMin, SymCommonFree,
		},
		Optional: []string{SymLoggerValid},
	},
	{
		Name:     "modbridge",
		Optional: []string{SymABIVersion},
	},
}
