package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"goto", KwGoto, true},
		{"while", KwWhile, true},
		{"unsigned", KwUnsigned, true},
		{"GOTO", Invalid, false}, // case-sensitive
		{"malloc", Invalid, false},
	}
	for _, tc := range cases {
		k, ok := LookupKeyword(tc.ident)
		if ok != tc.ok || (ok && k != tc.kind) {
			t.Errorf("LookupKeyword(%q) = %v, %v", tc.ident, k, ok)
		}
	}
}

func TestTypeSpecifierPredicate(t *testing.T) {
	if !(Token{Kind: KwInt}).IsTypeSpecifier() {
		t.Error("int must be a type specifier")
	}
	if !(Token{Kind: KwStruct}).IsTypeSpecifier() {
		t.Error("struct must start a specifier list")
	}
	if (Token{Kind: KwWhile}).IsTypeSpecifier() {
		t.Error("while must not be a type specifier")
	}
	if (Token{Kind: Ident}).IsTypeSpecifier() {
		t.Error("bare identifiers are not type specifiers")
	}
}

func TestKindString(t *testing.T) {
	if Lt.String() != "<" || ShlAssign.String() != "<<=" {
		t.Error("operator spellings are wrong")
	}
	if Kind(250).String() != "unknown" {
		t.Error("out-of-range kinds must stringify as unknown")
	}
}
