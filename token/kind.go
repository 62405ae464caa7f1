package token

// Kind classifies a Token. The set is closed and mirrors the grammar in
// SPEC_FULL.md §4.1-4.2: punctuation/operators, literals, keywords, and a
// handful of control tokens (Bad, Eof).
type Kind int

const (
	Bad Kind = iota
	Eof

	// Literals
	Identifier
	IntLiteral
	FloatLiteral
	StringLiteral
	CharLiteral

	// Single-character operators and punctuation
	Plus
	Minus
	Star
	Slash
	Percent
	Bang
	Equal
	Less
	Greater
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Dot
	Colon
	Semicolon
	Question
	Pipe
	Amp
	At

	// Multi-character operators
	EqualEqual
	BangEqual
	LessEqual
	GreaterEqual
	AmpAmp
	PipePipe
	FatArrow
	PlusEqual
	MinusEqual
	Arrow

	// Keywords
	Class
	Function
	Let
	Const
	Mut
	If
	Else
	While
	For
	In
	Return
	Break
	Continue
	Import
	Export
	From
	As
	Extern
	True
	False
	Null
	Void
	Int
	Float
	StringType
	Boolean
	Char
	Static
	Readonly
	Public
	Private
	Final
	This
	Super
	Extends
	Implements
	Interface
	Enum
	New
)

var names = map[Kind]string{
	Bad:            "Bad",
	Eof:            "Eof",
	Identifier:     "Identifier",
	IntLiteral:     "IntLiteral",
	FloatLiteral:   "FloatLiteral",
	StringLiteral:  "StringLiteral",
	CharLiteral:    "CharLiteral",
	Plus:           "Plus",
	Minus:          "Minus",
	Star:           "Star",
	Slash:          "Slash",
	Percent:        "Percent",
	Bang:           "Bang",
	Equal:          "Equal",
	Less:           "Less",
	Greater:        "Greater",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	LeftBrace:      "LeftBrace",
	RightBrace:     "RightBrace",
	LeftBracket:    "LeftBracket",
	RightBracket:   "RightBracket",
	Comma:          "Comma",
	Dot:            "Dot",
	Colon:          "Colon",
	Semicolon:      "Semicolon",
	Question:       "Question",
	Pipe:           "Pipe",
	Amp:            "Amp",
	At:             "At",
	EqualEqual:     "EqualEqual",
	BangEqual:      "BangEqual",
	LessEqual:      "LessEqual",
	GreaterEqual:   "GreaterEqual",
	AmpAmp:         "AmpAmp",
	PipePipe:       "PipePipe",
	FatArrow:       "FatArrow",
	PlusEqual:      "PlusEqual",
	MinusEqual:     "MinusEqual",
	Arrow:          "Arrow",
	Class:          "Class",
	Function:       "Function",
	Let:            "Let",
	Const:          "Const",
	Mut:            "Mut",
	If:             "If",
	Else:           "Else",
	While:          "While",
	For:            "For",
	In:             "In",
	Return:         "Return",
	Break:          "Break",
	Continue:       "Continue",
	Import:         "Import",
	Export:         "Export",
	From:           "From",
	As:             "As",
	Extern:         "Extern",
	True:           "True",
	False:          "False",
	Null:           "Null",
	Void:           "Void",
	Int:            "Int",
	Float:          "Float",
	StringType:     "StringType",
	Boolean:        "Boolean",
	Char:           "Char",
	Static:         "Static",
	Readonly:       "Readonly",
	Public:         "Public",
	Private:        "Private",
	Final:          "Final",
	This:           "This",
	Super:          "Super",
	Extends:        "Extends",
	Implements:     "Implements",
	Interface:      "Interface",
	Enum:           "Enum",
	New:            "New",
}

// String renders the Kind name for diagnostics and debug dumps.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "Unknown"
}

// Keywords is the closed keyword table the lexer consults once an
// identifier has been scanned in full.
var Keywords = map[string]Kind{
	"class":      Class,
	"function":   Function,
	"let":        Let,
	"const":      Const,
	"mut":        Mut,
	"if":         If,
	"else":       Else,
	"while":      While,
	"for":        For,
	"in":         In,
	"return":     Return,
	"break":      Break,
	"continue":   Continue,
	"import":     Import,
	"export":     Export,
	"from":       From,
	"as":         As,
	"extern":     Extern,
	"true":       True,
	"false":      False,
	"null":       Null,
	"void":       Void,
	"int":        Int,
	"float":      Float,
	"string":     StringType,
	"boolean":    Boolean,
	"char":       Char,
	"static":     Static,
	"readonly":   Readonly,
	"public":     Public,
	"private":    Private,
	"final":      Final,
	"this":       This,
	"super":      Super,
	"extends":    Extends,
	"implements": Implements,
	"interface":  Interface,
	"enum":       Enum,
	"new":        New,
}

// LookupIdentifier returns the keyword Kind for text, or Identifier if text
// is not one of the reserved words.
func LookupIdentifier(text string) Kind {
	if kind, ok := Keywords[text]; ok {
		return kind
	}
	return Identifier
}
