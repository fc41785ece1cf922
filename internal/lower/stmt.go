package lower

import (
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/value"

	"mc/internal/ast"
	"mc/internal/irgen"
)

// lowerBlock lowers a block's local declarations (hoisted to the top,
// regardless of where later statements reference them) followed by its
// statements, in its own scope.
func (l *Lowerer) lowerBlock(b *ast.Block) error {
	l.pushScope()
	defer l.popScope()

	for _, decl := range b.Decls {
		// Allocated in the function's entry block regardless of nesting
		// depth, matching the source compiler's own alloca placement; only
		// the binding's visibility follows this block's scope.
		slot := l.mod.CreateEntryAlloca(l.entry, irgen.TypeOf(decl.Type), decl.Name)
		l.define(decl.Name, slot, decl.Type)
	}
	for _, stmt := range b.Stmts {
		if err := l.lowerStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (l *Lowerer) lowerStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return l.lowerBlock(s)
	case *ast.If:
		return l.lowerIf(s)
	case *ast.While:
		return l.lowerWhile(s)
	case *ast.Return:
		return l.lowerReturn(s)
	case *ast.ExprStmt:
		if s.Expr == nil {
			return nil
		}
		_, err := l.lowerExpr(s.Expr)
		return err
	default:
		panic("lower: unhandled statement node")
	}
}

// toBool coerces a condition value to i1: bool values are used as-is, int
// and float values are compared against zero.
func (l *Lowerer) toBool(t typed) value.Value {
	switch t.typ {
	case "bool":
		return t.val
	case "float":
		return l.mod.CreateFCmp(enum.FPredUNE, t.val, irgen.ConstFloat(0))
	default:
		return l.mod.CreateICmp(enum.IPredNE, t.val, irgen.ConstInt(0))
	}
}

// lowerIf lowers an if/else. The then-branch, and the else-branch when one is
// written, each get their own basic block even when empty; without an else,
// the false edge goes straight to the shared end block where control
// rejoins. A branch that
// already ended in a terminator (typically a return) does not also get the
// redundant unconditional branch to end.
func (l *Lowerer) lowerIf(s *ast.If) error {
	cond, err := l.lowerExpr(s.Cond)
	if err != nil {
		return err
	}
	condBit := l.toBool(cond)

	thenBlock := l.mod.AppendBlock(l.fn)
	endBlock := l.mod.AppendBlock(l.fn)
	elseBlock := endBlock
	if s.Else != nil {
		elseBlock = l.mod.AppendBlock(l.fn)
	}

	l.mod.CreateCondBr(condBit, thenBlock, elseBlock)

	l.mod.SetInsertPoint(thenBlock)
	if err := l.lowerBlock(s.Then); err != nil {
		return err
	}
	if !l.mod.HasTerminator() {
		l.mod.CreateBr(endBlock)
	}

	if s.Else != nil {
		l.mod.SetInsertPoint(elseBlock)
		if err := l.lowerBlock(s.Else); err != nil {
			return err
		}
		if !l.mod.HasTerminator() {
			l.mod.CreateBr(endBlock)
		}
	}

	l.mod.SetInsertPoint(endBlock)
	return nil
}

// lowerWhile lowers a while loop: a header block re-evaluates the
// condition on every iteration, branching either into the body (which loops
// back to the header) or out to the end block.
func (l *Lowerer) lowerWhile(s *ast.While) error {
	headerBlock := l.mod.AppendBlock(l.fn)
	l.mod.CreateBr(headerBlock)

	l.mod.SetInsertPoint(headerBlock)
	cond, err := l.lowerExpr(s.Cond)
	if err != nil {
		return err
	}
	condBit := l.toBool(cond)

	bodyBlock := l.mod.AppendBlock(l.fn)
	endBlock := l.mod.AppendBlock(l.fn)
	l.mod.CreateCondBr(condBit, bodyBlock, endBlock)

	l.mod.SetInsertPoint(bodyBlock)
	if err := l.lowerStmt(s.Body); err != nil {
		return err
	}
	if !l.mod.HasTerminator() {
		l.mod.CreateBr(headerBlock)
	}

	l.mod.SetInsertPoint(endBlock)
	return nil
}

func (l *Lowerer) lowerReturn(s *ast.Return) error {
	if s.Value == nil {
		l.mod.CreateRetVoid()
		return nil
	}
	v, err := l.lowerExpr(s.Value)
	if err != nil {
		return err
	}
	// The declared return type is deliberately not enforced here: the
	// source compiler emits whatever value type the return expression
	// produces, conversion or no.
	l.mod.CreateRet(v.val)
	return nil
}
