package ast

import (
	"strings"
	"testing"
)

func TestPrintSimpleFunction(t *testing.T) {
	root := &Root{
		Decls: []Decl{
			&FuncDef{
				Proto: FuncProto{
					Name:       "add",
					ReturnType: "int",
					Params: []Param{
						{Name: "a", Type: "int"},
						{Name: "b", Type: "int"},
					},
				},
				Body: &Block{
					Stmts: []Stmt{
						&Return{Value: &Binary{
							Op:  "+",
							Lhs: &VarRef{Name: "a"},
							Rhs: &VarRef{Name: "b"},
						}},
					},
				},
			},
		},
	}

	var sb strings.Builder
	Print(&sb, root)

	want := strings.Join([]string{
		"Root",
		" |-FuncDef add(int a, int b) -> int",
		" |- |-Block",
		" |- |- |-Return",
		" |- |- |- |-Binary +",
		" |- |- |- |- |-VarRef a",
		" |- |- |- |- |-VarRef b",
		"",
	}, "\n")

	if sb.String() != want {
		t.Errorf("Print output mismatch:\ngot:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestPrintEmptyReturnAndExternAndGlobal(t *testing.T) {
	root := &Root{
		Externs: []*Extern{
			{Proto: FuncProto{Name: "exit", ReturnType: "void", Params: []Param{{Name: "code", Type: "int"}}}},
		},
		Decls: []Decl{
			&VarDecl{Name: "g", Type: "float"},
			&FuncDef{
				Proto: FuncProto{Name: "noop", ReturnType: "void"},
				Body:  &Block{Stmts: []Stmt{&Return{}}},
			},
		},
	}

	var sb strings.Builder
	Print(&sb, root)

	want := strings.Join([]string{
		"Root",
		" |-Extern exit(int code) -> void",
		" |-VarDecl float g",
		" |-FuncDef noop() -> void",
		" |- |-Block",
		" |- |- |-Return",
		"",
	}, "\n")

	if sb.String() != want {
		t.Errorf("Print output mismatch:\ngot:\n%s\nwant:\n%s", sb.String(), want)
	}
}
