package token

var keywords = map[string]Kind{
	"void":     KwVoid,
	"char":     KwChar,
	"short":    KwShort,
	"int":      KwInt,
	"long":     KwLong,
	"float":    KwFloat,
	"double":   KwDouble,
	"signed":   KwSigned,
	"unsigned": KwUnsigned,
	"const":    KwConst,
	"volatile": KwVolatile,
	"static":   KwStatic,
	"extern":   KwExtern,
	"struct":   KwStruct,
	"union":    KwUnion,
	"enum":     KwEnum,
	"typedef":  KwTypedef,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"do":       KwDo,
	"for":      KwFor,
	"return":   KwReturn,
	"goto":     KwGoto,
	"break":    KwBreak,
	"continue": KwContinue,
	"switch":   KwSwitch,
	"case":     KwCase,
	"default":  KwDefault,
	"sizeof":   KwSizeof,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings match.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
