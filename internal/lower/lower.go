// Package lower translates a mini-C AST into LLVM IR. It performs the only
// semantic analysis mini-C has: identifier resolution over a lexically
// scoped environment stack and a minimal type system with implicit
// integer/float promotion. There is no separate typed-AST phase; resolution
// and IR emission happen together, one AST node at a time, the way the
// source compiler itself does.
package lower

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"

	"mc/internal/ast"
	"mc/internal/irgen"
	"mc/internal/report"
)

// Error kinds mini-C's semantic checks can raise. Every one is fatal:
// lowering aborts at the first error, matching the source compiler's
// abort-at-first-error policy.
type Error struct {
	Kind string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func errUndefinedVar(name string) error {
	return &Error{Kind: "SemUndefinedVar", Msg: "undefined variable " + name}
}

func errUndefinedFn(name string) error {
	return &Error{Kind: "SemUndefinedFn", Msg: "undefined function " + name}
}

func errArgArity(name string, want, got int) error {
	return &Error{Kind: "SemArgArity", Msg: fmt.Sprintf("%s expects %d argument(s), got %d", name, want, got)}
}

// binding is a resolved local variable: its stack slot and declared type.
type binding struct {
	ptr value.Value
	typ string
}

// Lowerer holds all state threaded through a single translation unit's
// lowering: the module under construction, the diagnostic sink, the global
// and function-prototype tables, and (while lowering a function body) the
// scope stack and enclosing function.
type Lowerer struct {
	mod *irgen.Module
	rep *report.Reporter

	globals map[string]string // global variable name -> declared type
	protos  map[string]ast.FuncProto

	fn     *ir.Func
	entry  *ir.Block
	scopes []map[string]binding
}

// New creates a Lowerer writing into mod and reporting warnings through rep.
func New(mod *irgen.Module, rep *report.Reporter) *Lowerer {
	return &Lowerer{
		mod:     mod,
		rep:     rep,
		globals: make(map[string]string),
		protos:  make(map[string]ast.FuncProto),
	}
}

// Lower lowers an entire translation unit in a single pass over Decls, in
// source order: a function's body is lowered as soon as its definition is
// reached, using only the protos and globals declared by that point. A call
// to a function defined later in the source is therefore undefined at the
// call site, the same as the compiler this one is modeled on.
func (l *Lowerer) Lower(root *ast.Root) error {
	for _, ext := range root.Externs {
		l.declareProto(ext.Proto)
	}
	for _, decl := range root.Decls {
		switch d := decl.(type) {
		case *ast.VarDecl:
			l.lowerGlobalVarDecl(d)
		case *ast.FuncDef:
			l.declareProto(d.Proto)
			if err := l.lowerFuncDef(d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Lowerer) declareProto(proto ast.FuncProto) {
	l.protos[proto.Name] = proto
	params := make([]irgen.Param, len(proto.Params))
	for i, p := range proto.Params {
		params[i] = irgen.Param{Name: p.Name, Type: p.Type}
	}
	l.mod.DeclareFunction(proto.Name, proto.ReturnType, params)
}

func (l *Lowerer) lowerGlobalVarDecl(vd *ast.VarDecl) {
	l.mod.DeclareGlobal(vd.Name, vd.Type)
	l.globals[vd.Name] = vd.Type
}

// lowerFuncDef lowers a single function's body. The scope stack is reset to
// a single empty frame per function: mini-C has no nested function
// definitions, so nothing from an enclosing function is ever visible.
func (l *Lowerer) lowerFuncDef(fd *ast.FuncDef) error {
	fn := l.mod.GetFunction(fd.Proto.Name)
	l.fn = fn
	l.scopes = []map[string]binding{make(map[string]binding)}

	entry := l.mod.AppendBlock(fn)
	l.entry = entry
	l.mod.SetInsertPoint(entry)

	for i, param := range fd.Proto.Params {
		slot := l.mod.CreateEntryAlloca(l.entry, irgen.TypeOf(param.Type), param.Name)
		l.mod.CreateStore(fn.Params[i], slot)
		l.define(param.Name, slot, param.Type)
	}

	if err := l.lowerBlock(fd.Body); err != nil {
		return err
	}

	if !l.mod.HasTerminator() {
		if fd.Proto.ReturnType == "void" {
			l.mod.CreateRetVoid()
		} else {
			// Source has no implicit return for non-void functions; a
			// missing return falls through to an unreachable-in-practice
			// zero-valued return so the block stays well-formed.
			l.mod.CreateRet(zeroValue(fd.Proto.ReturnType))
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// scope stack

func (l *Lowerer) pushScope() {
	l.scopes = append(l.scopes, make(map[string]binding))
}

func (l *Lowerer) popScope() {
	l.scopes = l.scopes[:len(l.scopes)-1]
}

func (l *Lowerer) define(name string, ptr value.Value, typ string) {
	l.scopes[len(l.scopes)-1][name] = binding{ptr: ptr, typ: typ}
}

// lookup resolves name by walking the scope stack innermost-first, falling
// back to the global table. It reports whether the name resolved at all.
func (l *Lowerer) lookup(name string) (binding, bool) {
	for i := len(l.scopes) - 1; i >= 0; i-- {
		if b, ok := l.scopes[i][name]; ok {
			return b, true
		}
	}
	if typ, ok := l.globals[name]; ok {
		g := l.mod.GetGlobal(name)
		return binding{ptr: g, typ: typ}, true
	}
	return binding{}, false
}

func zeroValue(typ string) value.Value {
	switch typ {
	case "int":
		return irgen.ConstInt(0)
	case "float":
		return irgen.ConstFloat(0)
	case "bool":
		return irgen.ConstBool(false)
	default:
		return nil
	}
}
