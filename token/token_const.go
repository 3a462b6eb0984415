package token

const (
	Undetermined Token = iota

	Skip

	Illegal
	Eof
	Comment

	String
	Number

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	QuotientAssign  // /=
	RemainderAssign // %=

	LogicalAnd // &&
	LogicalOr  // ||
	Increment  // ++
	Decrement  // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Assign      // =
	Not         // !

	BitwiseNot // ~

	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?

	Identifier
	Keyword
	Boolean
	Null

	If
	In

	Var
	Let
	For
	New
	Try

	This
	Else
	Void

	Const
	While
	Break
	Catch
	Throw

	Return
	Typeof
	Delete

	Finally

	Function
	Continue

	InstanceOf
)

var token2string = [...]string{
	Illegal:          "Illegal",
	Eof:              "Eof",
	Comment:          "Comment",
	Keyword:          "Keyword",
	String:           "String",
	Boolean:          "Boolean",
	Null:             "Null",
	Number:           "Number",
	Identifier:       "Identifier",
	Plus:             "+",
	Minus:            "-",
	Multiply:         "*",
	Slash:            "/",
	Remainder:        "%",
	AddAssign:        "+=",
	SubtractAssign:   "-=",
	MultiplyAssign:   "*=",
	QuotientAssign:   "/=",
	RemainderAssign:  "%=",
	LogicalAnd:       "&&",
	LogicalOr:        "||",
	Increment:        "++",
	Decrement:        "--",
	Equal:            "==",
	StrictEqual:      "===",
	Less:             "<",
	Greater:          ">",
	Assign:           "=",
	Not:              "!",
	BitwiseNot:       "~",
	NotEqual:         "!=",
	StrictNotEqual:   "!==",
	LessOrEqual:      "<=",
	GreaterOrEqual:   ">=",
	LeftParenthesis:  "(",
	LeftBracket:      "[",
	LeftBrace:        "{",
	Comma:            ",",
	Period:           ".",
	RightParenthesis: ")",
	RightBracket:     "]",
	RightBrace:       "}",
	Semicolon:        ";",
	Colon:            ":",
	QuestionMark:     "?",
	If:               "if",
	In:               "in",
	Var:              "var",
	Let:              "let",
	For:              "for",
	New:              "new",
	Try:              "try",
	This:             "this",
	Else:             "else",
	Void:             "void",
	Const:            "const",
	While:            "while",
	Break:            "break",
	Catch:            "catch",
	Throw:            "throw",
	Return:           "return",
	Typeof:           "typeof",
	Delete:           "delete",
	Finally:          "finally",
	Function:         "function",
	Continue:         "continue",
	InstanceOf:       "instanceof",
}

var keywordTable = map[string]keyword{
	"if":         {token: If},
	"in":         {token: In},
	"var":        {token: Var},
	"let":        {token: Let, strict: true},
	"for":        {token: For},
	"new":        {token: New},
	"try":        {token: Try},
	"this":       {token: This},
	"else":       {token: Else},
	"void":       {token: Void},
	"const":      {token: Const},
	"while":      {token: While},
	"break":      {token: Break},
	"catch":      {token: Catch},
	"throw":      {token: Throw},
	"return":     {token: Return},
	"typeof":     {token: Typeof},
	"delete":     {token: Delete},
	"finally":    {token: Finally},
	"function":   {token: Function},
	"continue":   {token: Continue},
	"instanceof": {token: InstanceOf},
	"class":      {token: Keyword, futureKeyword: true},
	"enum":       {token: Keyword, futureKeyword: true},
	"export":     {token: Keyword, futureKeyword: true},
	"import":     {token: Keyword, futureKeyword: true},
	"false":      {token: Boolean},
	"true":       {token: Boolean},
	"null":       {token: Null},
}
