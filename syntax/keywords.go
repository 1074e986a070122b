package syntax

var allOn = Options{
	Numbers:           true,
	Strings:           true,
	Chars:             true,
	Comments:          true,
	MultilineComments: true,
}

// builtin is keyed by enry language name.
var builtin = map[string]*Lexicon{
	"Rust": rustLexicon(),
	"Go":   goLexicon(),
	"C":    cLexicon(),
	"C++":  cppLexicon(),
}

var builtinOrder = []string{"Rust", "Go", "C", "C++"}

func rustLexicon() *Lexicon {
	return NewLexicon("Rust", allOn, []string{
		"as", "break", "const", "continue", "crate", "else", "enum", "extern",
		"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
		"move", "mut", "pub", "ref", "return", "self", "Self", "static",
		"struct", "super", "trait", "true", "type", "unsafe", "use", "where",
		"while", "dyn", "abstract", "become", "box", "do", "final", "macro",
		"override", "priv", "typeof", "unsized", "virtual", "yield", "async",
		"await", "try",
	}, []string{
		"bool", "char", "i8", "i16", "i32", "i64", "isize", "u8", "u16", "u32",
		"u64", "usize", "f32", "f64", "String", "&str", "Vec", "std", "core",
		"alloc", "Result", "Box", "Error", "Option", "Default", "Clone", "Copy",
		"PartialEq", "Debug", "Instant",
	})
}

func goLexicon() *Lexicon {
	return NewLexicon("Go", allOn, []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var", "true", "false", "nil", "iota",
	}, []string{
		"any", "bool", "byte", "comparable", "complex64", "complex128", "error",
		"float32", "float64", "int", "int8", "int16", "int32", "int64", "rune",
		"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"append", "cap", "clear", "close", "copy", "delete", "len", "make",
		"max", "min", "new", "panic", "print", "println", "recover",
	})
}

var cPrimary = []string{
	"auto", "break", "case", "const", "continue", "default", "do", "else",
	"enum", "extern", "for", "goto", "if", "inline", "register", "restrict",
	"return", "sizeof", "static", "struct", "switch", "typedef", "union",
	"volatile", "while", "#include", "#define", "#ifdef", "#ifndef",
	"#endif", "#if", "#else",
}

var cSecondary = []string{
	"char", "double", "float", "int", "long", "short", "signed", "unsigned",
	"void", "bool", "size_t", "int8_t", "int16_t", "int32_t", "int64_t",
	"uint8_t", "uint16_t", "uint32_t", "uint64_t", "NULL",
}

func cLexicon() *Lexicon {
	return NewLexicon("C", allOn, cPrimary, cSecondary)
}

func cppLexicon() *Lexicon {
	primary := append(append([]string(nil), cPrimary...),
		"class", "namespace", "template", "typename", "public", "private",
		"protected", "virtual", "override", "new", "delete", "this", "using",
		"try", "catch", "throw", "nullptr", "true", "false", "constexpr",
		"auto", "operator",
	)
	secondary := append(append([]string(nil), cSecondary...), "std", "string", "vector")
	return NewLexicon("C++", allOn, primary, secondary)
}
