// Package irgen is a thin collaborator around llir/llvm that gives the
// lowering pass the handful of operations it needs — module/function
// bookkeeping, block creation, and value emitters — without exposing
// llir/llvm's full API. It mirrors the shape of the teacher's own LLVM
// collaborator (a module plus an insertion-point block, built up
// instruction by instruction) but targets the pure-Go llir/llvm builder
// instead of the teacher's cgo llvm-c binding.
package irgen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Module owns the in-progress LLVM module and the current insertion point.
type Module struct {
	mod   *ir.Module
	block *ir.Block
}

// NewModule creates an empty module.
func NewModule() *Module {
	return &Module{mod: ir.NewModule()}
}

// Type aliases so callers never need to import llir/llvm directly.
var (
	I32   = types.I32
	Float = types.Float
	I1    = types.I1
	Void  = types.Void
)

// TypeOf maps a mini-C type name to its IR type.
func TypeOf(name string) types.Type {
	switch name {
	case "int":
		return I32
	case "float":
		return Float
	case "bool":
		return I1
	case "void":
		return Void
	default:
		panic("irgen: unknown type name " + name)
	}
}

// -----------------------------------------------------------------------------
// module-level declarations

// GetFunction returns a previously declared function by name, or nil.
func (m *Module) GetFunction(name string) *ir.Func {
	for _, f := range m.mod.Funcs {
		if f.GlobalName == name {
			return f
		}
	}
	return nil
}

// Param is a single function parameter's name and mini-C type, used only to
// pass signatures into DeclareFunction without irgen depending on the ast
// package.
type Param struct {
	Name, Type string
}

// DeclareFunction declares (without a body) a function with the given
// mini-C signature, or returns the existing declaration if already present.
func (m *Module) DeclareFunction(name, retType string, params []Param) *ir.Func {
	if f := m.GetFunction(name); f != nil {
		return f
	}
	irParams := make([]*ir.Param, len(params))
	for i, p := range params {
		irParams[i] = ir.NewParam(p.Name, TypeOf(p.Type))
	}
	return m.mod.NewFunc(name, TypeOf(retType), irParams...)
}

// GetGlobal returns a previously declared global variable by name, or nil.
func (m *Module) GetGlobal(name string) *ir.Global {
	for _, g := range m.mod.Globals {
		if g.GlobalName == name {
			return g
		}
	}
	return nil
}

// DeclareGlobal declares a global variable of the given mini-C type,
// default-initialized to zero.
func (m *Module) DeclareGlobal(name, typ string) *ir.Global {
	if g := m.GetGlobal(name); g != nil {
		return g
	}
	t := TypeOf(typ)
	g := m.mod.NewGlobal(name, t)
	g.Init = constant.NewZeroInitializer(t)
	return g
}

// Print renders the module as textual LLVM IR.
func (m *Module) Print() string {
	return m.mod.String()
}

// -----------------------------------------------------------------------------
// constants

func ConstInt(v int32) value.Value {
	return constant.NewInt(types.I32, int64(v))
}

func ConstFloat(v float32) value.Value {
	return constant.NewFloat(types.Float, float64(v))
}

func ConstBool(v bool) value.Value {
	return constant.NewBool(v)
}

// -----------------------------------------------------------------------------
// function/block construction

// AppendBlock creates a new basic block on fn with an auto-generated label.
func (m *Module) AppendBlock(fn *ir.Func) *ir.Block {
	return fn.NewBlock(fmt.Sprintf("bb%d", len(fn.Blocks)))
}

// SetInsertPoint directs subsequent emitters at block.
func (m *Module) SetInsertPoint(block *ir.Block) {
	m.block = block
}

// InsertBlock returns the block instructions are currently being appended to.
func (m *Module) InsertBlock() *ir.Block {
	return m.block
}

// HasTerminator reports whether the current insertion block already ends in
// a terminator instruction (a return or branch), so callers can avoid
// emitting a second one.
func (m *Module) HasTerminator() bool {
	return m.block.Term != nil
}

// -----------------------------------------------------------------------------
// memory

func (m *Module) CreateAlloca(typ types.Type, name string) value.Value {
	a := m.block.NewAlloca(typ)
	a.LocalName = name
	return a
}

// CreateEntryAlloca allocates a stack slot at the front of entry rather than
// at the current insertion point, the way the teacher's own alloca helper
// does: every local's alloca lives in the function's entry block regardless
// of which block declares it, so later SSA-promotion passes can find them
// all in one place.
func (m *Module) CreateEntryAlloca(entry *ir.Block, typ types.Type, name string) value.Value {
	a := ir.NewAlloca(typ)
	a.LocalName = name
	entry.Insts = append([]ir.Instruction{a}, entry.Insts...)
	return a
}

func (m *Module) CreateLoad(typ types.Type, ptr value.Value) value.Value {
	return m.block.NewLoad(typ, ptr)
}

func (m *Module) CreateStore(val, ptr value.Value) {
	m.block.NewStore(val, ptr)
}

// -----------------------------------------------------------------------------
// arithmetic and comparison

func (m *Module) CreateAdd(l, r value.Value) value.Value  { return m.block.NewAdd(l, r) }
func (m *Module) CreateSub(l, r value.Value) value.Value  { return m.block.NewSub(l, r) }
func (m *Module) CreateMul(l, r value.Value) value.Value  { return m.block.NewMul(l, r) }
func (m *Module) CreateSDiv(l, r value.Value) value.Value { return m.block.NewSDiv(l, r) }
func (m *Module) CreateSRem(l, r value.Value) value.Value { return m.block.NewSRem(l, r) }

func (m *Module) CreateFAdd(l, r value.Value) value.Value { return m.block.NewFAdd(l, r) }
func (m *Module) CreateFSub(l, r value.Value) value.Value { return m.block.NewFSub(l, r) }
func (m *Module) CreateFMul(l, r value.Value) value.Value { return m.block.NewFMul(l, r) }
func (m *Module) CreateFDiv(l, r value.Value) value.Value { return m.block.NewFDiv(l, r) }
func (m *Module) CreateFRem(l, r value.Value) value.Value { return m.block.NewFRem(l, r) }

func (m *Module) CreateICmp(pred enum.IPred, l, r value.Value) value.Value {
	return m.block.NewICmp(pred, l, r)
}

func (m *Module) CreateFCmp(pred enum.FPred, l, r value.Value) value.Value {
	return m.block.NewFCmp(pred, l, r)
}

func (m *Module) CreateAnd(l, r value.Value) value.Value { return m.block.NewAnd(l, r) }
func (m *Module) CreateOr(l, r value.Value) value.Value  { return m.block.NewOr(l, r) }

func (m *Module) CreateNot(v value.Value) value.Value {
	return m.block.NewXor(v, constant.True)
}

func (m *Module) CreateNeg(v value.Value) value.Value {
	return m.block.NewSub(constant.NewInt(types.I32, 0), v)
}

func (m *Module) CreateFNeg(v value.Value) value.Value {
	return m.block.NewFSub(constant.NewFloat(types.Float, 0), v)
}

// -----------------------------------------------------------------------------
// conversions

func (m *Module) CreateSIToFP(v value.Value) value.Value {
	return m.block.NewSIToFP(v, types.Float)
}

func (m *Module) CreateFPToSI(v value.Value) value.Value {
	return m.block.NewFPToSI(v, types.I32)
}

func (m *Module) CreateZExtToI32(v value.Value) value.Value {
	return m.block.NewZExt(v, types.I32)
}

// -----------------------------------------------------------------------------
// control flow and calls

func (m *Module) CreateCall(fn value.Value, args ...value.Value) value.Value {
	return m.block.NewCall(fn, args...)
}

func (m *Module) CreateCondBr(cond value.Value, then, els *ir.Block) {
	m.block.NewCondBr(cond, then, els)
}

func (m *Module) CreateBr(target *ir.Block) {
	m.block.NewBr(target)
}

func (m *Module) CreateRet(v value.Value) {
	m.block.NewRet(v)
}

func (m *Module) CreateRetVoid() {
	m.block.NewRet(nil)
}
