package lower

import (
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/value"

	"mc/internal/ast"
	"mc/internal/irgen"
)

// typed pairs an IR value with its mini-C type, since llir/llvm values don't
// carry that back out in a form cheap to pattern-match on.
type typed struct {
	val value.Value
	typ string
}

// lowerExpr evaluates expr in the current insertion block and returns its
// IR value together with its mini-C type.
func (l *Lowerer) lowerExpr(expr ast.Expr) (typed, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return typed{irgen.ConstInt(e.Value), "int"}, nil
	case *ast.FloatLit:
		return typed{irgen.ConstFloat(e.Value), "float"}, nil
	case *ast.BoolLit:
		return typed{irgen.ConstBool(e.Value), "bool"}, nil
	case *ast.VarRef:
		return l.lowerVarRef(e)
	case *ast.VarAssign:
		return l.lowerVarAssign(e)
	case *ast.Binary:
		return l.lowerBinary(e)
	case *ast.Unary:
		return l.lowerUnary(e)
	case *ast.Call:
		return l.lowerCall(e)
	default:
		panic("lower: unhandled expression node")
	}
}

func (l *Lowerer) lowerVarRef(ref *ast.VarRef) (typed, error) {
	b, ok := l.lookup(ref.Name)
	if !ok {
		return typed{}, errUndefinedVar(ref.Name)
	}
	val := l.mod.CreateLoad(irgen.TypeOf(b.typ), b.ptr)
	return typed{val, b.typ}, nil
}

func (l *Lowerer) lowerVarAssign(a *ast.VarAssign) (typed, error) {
	rhs, err := l.lowerExpr(a.RHS)
	if err != nil {
		return typed{}, err
	}
	b, ok := l.lookup(a.Target)
	if !ok {
		return typed{}, errUndefinedVar(a.Target)
	}

	val := rhs.val
	if rhs.typ != b.typ {
		val = l.convert(rhs, b.typ, "assigning to")
	}
	l.mod.CreateStore(val, b.ptr)
	return typed{val, b.typ}, nil
}

// convert inserts the implicit conversion needed to make v usable as target
// type want, warning about it (conversions are always either float<->int;
// mini-C never silently converts to/from bool).
func (l *Lowerer) convert(v typed, want string, action string) value.Value {
	if v.typ == want {
		return v.val
	}
	l.rep.Warn("implicit conversion from %s to %s while %s a value", v.typ, want, action)
	switch {
	case v.typ == "int" && want == "float":
		return l.mod.CreateSIToFP(v.val)
	case v.typ == "float" && want == "int":
		return l.mod.CreateFPToSI(v.val)
	default:
		// bool participates in arithmetic by zero-extension only; mini-C
		// never converts directly between bool and float.
		return v.val
	}
}

// lowerBinary lowers a binary operator application. If either operand is
// float, the other is promoted to float (with a warning) and a float
// instruction is emitted; otherwise both operands are treated as 32-bit
// integers (bool values zero-extended first).
func (l *Lowerer) lowerBinary(b *ast.Binary) (typed, error) {
	lhs, err := l.lowerExpr(b.Lhs)
	if err != nil {
		return typed{}, err
	}
	rhs, err := l.lowerExpr(b.Rhs)
	if err != nil {
		return typed{}, err
	}

	if lhs.typ == "float" || rhs.typ == "float" {
		lv := lhs.val
		if lhs.typ != "float" {
			l.rep.Warn("implicit conversion from %s to float in binary operation", lhs.typ)
			lv = l.mod.CreateSIToFP(lv)
		}
		rv := rhs.val
		if rhs.typ != "float" {
			l.rep.Warn("implicit conversion from %s to float in binary operation", rhs.typ)
			rv = l.mod.CreateSIToFP(rv)
		}
		return typed{l.emitFloatBinary(b.Op, lv, rv), floatResultType(b.Op)}, nil
	}

	lv := l.widenToI32(lhs)
	rv := l.widenToI32(rhs)
	return typed{l.emitIntBinary(b.Op, lv, rv), intResultType(b.Op)}, nil
}

// widenToI32 zero-extends a bool operand to i32 for mixed bool/int
// arithmetic; mini-C has no other implicit int-width conversions.
func (l *Lowerer) widenToI32(t typed) value.Value {
	if t.typ == "bool" {
		return l.mod.CreateZExtToI32(t.val)
	}
	return t.val
}

func floatResultType(op string) string {
	switch op {
	case "<", "<=", ">", ">=", "==", "!=":
		return "bool"
	default:
		return "float"
	}
}

func intResultType(op string) string {
	switch op {
	case "<", "<=", ">", ">=", "==", "!=":
		return "bool"
	default:
		return "int"
	}
}

func (l *Lowerer) emitFloatBinary(op string, lv, rv value.Value) value.Value {
	switch op {
	case "+":
		return l.mod.CreateFAdd(lv, rv)
	case "-":
		return l.mod.CreateFSub(lv, rv)
	case "*":
		return l.mod.CreateFMul(lv, rv)
	case "/":
		return l.mod.CreateFDiv(lv, rv)
	case "%":
		return l.mod.CreateFRem(lv, rv)
	case "<":
		return l.mod.CreateFCmp(enum.FPredULT, lv, rv)
	case "<=":
		return l.mod.CreateFCmp(enum.FPredULE, lv, rv)
	case ">":
		return l.mod.CreateFCmp(enum.FPredUGT, lv, rv)
	case ">=":
		return l.mod.CreateFCmp(enum.FPredUGE, lv, rv)
	case "==":
		return l.mod.CreateFCmp(enum.FPredUEQ, lv, rv)
	case "!=":
		return l.mod.CreateFCmp(enum.FPredUNE, lv, rv)
	case "&&":
		return l.mod.CreateAnd(lv, rv)
	case "||":
		return l.mod.CreateOr(lv, rv)
	default:
		panic("lower: unknown binary operator " + op)
	}
}

func (l *Lowerer) emitIntBinary(op string, lv, rv value.Value) value.Value {
	switch op {
	case "+":
		return l.mod.CreateAdd(lv, rv)
	case "-":
		return l.mod.CreateSub(lv, rv)
	case "*":
		return l.mod.CreateMul(lv, rv)
	case "/":
		return l.mod.CreateSDiv(lv, rv)
	case "%":
		return l.mod.CreateSRem(lv, rv)
	case "<":
		return l.mod.CreateICmp(enum.IPredSLT, lv, rv)
	case "<=":
		return l.mod.CreateICmp(enum.IPredSLE, lv, rv)
	case ">":
		return l.mod.CreateICmp(enum.IPredSGT, lv, rv)
	case ">=":
		return l.mod.CreateICmp(enum.IPredSGE, lv, rv)
	case "==":
		return l.mod.CreateICmp(enum.IPredEQ, lv, rv)
	case "!=":
		return l.mod.CreateICmp(enum.IPredNE, lv, rv)
	case "&&":
		return l.mod.CreateAnd(lv, rv)
	case "||":
		return l.mod.CreateOr(lv, rv)
	default:
		panic("lower: unknown binary operator " + op)
	}
}

func (l *Lowerer) lowerUnary(u *ast.Unary) (typed, error) {
	operand, err := l.lowerExpr(u.Operand)
	if err != nil {
		return typed{}, err
	}
	switch operand.typ {
	case "float":
		if u.Op == "-" {
			return typed{l.mod.CreateFNeg(operand.val), "float"}, nil
		}
		return typed{l.mod.CreateNot(operand.val), "bool"}, nil
	case "bool":
		if u.Op == "-" {
			return typed{l.mod.CreateNeg(l.mod.CreateZExtToI32(operand.val)), "int"}, nil
		}
		return typed{l.mod.CreateNot(operand.val), "bool"}, nil
	default: // int
		if u.Op == "-" {
			return typed{l.mod.CreateNeg(operand.val), "int"}, nil
		}
		return typed{l.mod.CreateNot(operand.val), "bool"}, nil
	}
}

func (l *Lowerer) lowerCall(c *ast.Call) (typed, error) {
	proto, ok := l.protos[c.Callee]
	if !ok {
		return typed{}, errUndefinedFn(c.Callee)
	}
	if len(c.Args) != len(proto.Params) {
		return typed{}, errArgArity(c.Callee, len(proto.Params), len(c.Args))
	}

	fn := l.mod.GetFunction(c.Callee)
	args := make([]value.Value, len(c.Args))
	for i, argExpr := range c.Args {
		arg, err := l.lowerExpr(argExpr)
		if err != nil {
			return typed{}, err
		}
		args[i] = arg.val
	}
	result := l.mod.CreateCall(fn, args...)
	return typed{result, proto.ReturnType}, nil
}
