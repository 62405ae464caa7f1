package diagnostic

// Code constants follow the I{M}{NNNN} scheme from SPEC_FULL.md §7:
// M is L (lexer), P (parser), or A (analyzer).
const (
	// Lexer
	CodeBadCharacter      = "IL0001"
	CodeUnterminatedString = "IL0002"
	CodeMalformedNumber    = "IL0003"

	// Parser
	CodeExpectedToken            = "IP0001"
	CodeExpectedExpression       = "IP0002"
	CodeInvalidAssignmentTarget  = "IP0003"
	CodeTooManyArguments         = "IP0004"

	// Analyzer
	CodeUndeclaredVariable           = "IA0001"
	CodeInvalidReassignedVariable    = "IA0002"
	CodeFunctionAlreadyDefined       = "IA0010"
	CodeClassAlreadyDefined          = "IA0011"
	CodeMethodAlreadyDefined         = "IA0012"
	CodePropertyAlreadyDefined       = "IA0013"
	CodeTypeMismatch                 = "IA0015"
	CodeUndefinedMethods             = "IA0020"
	CodeReturnOutsideFunction        = "IA0030"
	CodeBreakOutsideLoop             = "IA0031"
	CodeContinueOutsideLoop          = "IA0032"
	CodeModuleNotFound               = "IA0040"
	CodeImportedFunctionIsNotExported = "IA0041"
	CodeImportCycle                  = "IA0099"
)
