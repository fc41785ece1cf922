package irgen

import (
	"strings"
	"testing"

	"github.com/llir/llvm/ir/enum"
)

func TestTypeOf(t *testing.T) {
	cases := map[string]bool{"int": true, "float": true, "bool": true, "void": true}
	for name := range cases {
		if TypeOf(name) == nil {
			t.Errorf("TypeOf(%q) = nil", name)
		}
	}
}

func TestTypeOfPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unknown type name")
		}
	}()
	TypeOf("struct")
}

func TestDeclareFunctionIsIdempotent(t *testing.T) {
	m := NewModule()
	f1 := m.DeclareFunction("add", "int", []Param{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}})
	f2 := m.DeclareFunction("add", "int", []Param{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}})
	if f1 != f2 {
		t.Fatal("DeclareFunction should return the existing function on redeclaration")
	}
}

func TestDeclareGlobalIsIdempotent(t *testing.T) {
	m := NewModule()
	g1 := m.DeclareGlobal("counter", "int")
	g2 := m.DeclareGlobal("counter", "int")
	if g1 != g2 {
		t.Fatal("DeclareGlobal should return the existing global on redeclaration")
	}
}

func TestSimpleFunctionPrintsExpectedShape(t *testing.T) {
	m := NewModule()
	fn := m.DeclareFunction("add", "int", []Param{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}})

	entry := m.AppendBlock(fn)
	m.SetInsertPoint(entry)

	aSlot := m.CreateEntryAlloca(entry, I32, "a.addr")
	bSlot := m.CreateEntryAlloca(entry, I32, "b.addr")
	m.CreateStore(fn.Params[0], aSlot)
	m.CreateStore(fn.Params[1], bSlot)

	a := m.CreateLoad(I32, aSlot)
	b := m.CreateLoad(I32, bSlot)
	sum := m.CreateAdd(a, b)
	m.CreateRet(sum)

	out := m.Print()
	for _, want := range []string{"define i32 @add", "alloca i32", "add i32", "ret i32"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHasTerminator(t *testing.T) {
	m := NewModule()
	fn := m.DeclareFunction("f", "void", nil)
	entry := m.AppendBlock(fn)
	m.SetInsertPoint(entry)

	if m.HasTerminator() {
		t.Fatal("fresh block should have no terminator")
	}
	m.CreateRetVoid()
	if !m.HasTerminator() {
		t.Fatal("block should have a terminator after CreateRetVoid")
	}
}

func TestICmpPredicateWiring(t *testing.T) {
	m := NewModule()
	fn := m.DeclareFunction("f", "bool", []Param{{Name: "x", Type: "int"}})
	entry := m.AppendBlock(fn)
	m.SetInsertPoint(entry)

	cmp := m.CreateICmp(enum.IPredSLT, fn.Params[0], ConstInt(0))
	m.CreateRet(cmp)

	if !strings.Contains(m.Print(), "icmp slt") {
		t.Errorf("expected an slt comparison in output:\n%s", m.Print())
	}
}
