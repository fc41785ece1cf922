package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a deterministic, indented rendering of root to w: one node
// per line, each depth level adding a " |-" prefix. Both the driver's
// stdout dump and the pretty-printer's golden tests read this format.
func Print(w io.Writer, root *Root) {
	p := &printer{w: w}
	p.printRoot(root)
}

type printer struct {
	w io.Writer
}

func (p *printer) line(depth int, format string, args ...interface{}) {
	fmt.Fprint(p.w, strings.Repeat(" |-", depth))
	fmt.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

func (p *printer) printRoot(root *Root) {
	p.line(0, "Root")
	for _, ext := range root.Externs {
		p.printExtern(ext, 1)
	}
	for _, decl := range root.Decls {
		p.printDecl(decl, 1)
	}
}

func (p *printer) printDecl(decl Decl, depth int) {
	switch d := decl.(type) {
	case *FuncDef:
		p.printFuncDef(d, depth)
	case *VarDecl:
		p.printVarDecl(d, depth)
	}
}

func (p *printer) printExtern(ext *Extern, depth int) {
	p.line(depth, "Extern %s", protoSig(ext.Proto))
}

func (p *printer) printFuncDef(fd *FuncDef, depth int) {
	p.line(depth, "FuncDef %s", protoSig(fd.Proto))
	p.printBlock(fd.Body, depth+1)
}

func protoSig(proto FuncProto) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(", proto.Name)
	for i, param := range proto.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %s", param.Type, param.Name)
	}
	fmt.Fprintf(&b, ") -> %s", proto.ReturnType)
	return b.String()
}

func (p *printer) printVarDecl(vd *VarDecl, depth int) {
	p.line(depth, "VarDecl %s %s", vd.Type, vd.Name)
}

func (p *printer) printBlock(b *Block, depth int) {
	p.line(depth, "Block")
	for _, decl := range b.Decls {
		p.printVarDecl(decl, depth+1)
	}
	for _, stmt := range b.Stmts {
		p.printStmt(stmt, depth+1)
	}
}

func (p *printer) printStmt(stmt Stmt, depth int) {
	switch s := stmt.(type) {
	case *Block:
		p.printBlock(s, depth)
	case *VarDecl:
		p.printVarDecl(s, depth)
	case *If:
		p.printIf(s, depth)
	case *While:
		p.printWhile(s, depth)
	case *Return:
		p.printReturn(s, depth)
	case *ExprStmt:
		p.printExprStmt(s, depth)
	case *VarAssign:
		p.printExpr(s, depth)
	}
}

func (p *printer) printIf(s *If, depth int) {
	p.line(depth, "If")
	p.printExpr(s.Cond, depth+1)
	p.printBlock(s.Then, depth+1)
	if s.Else != nil {
		p.printBlock(s.Else, depth+1)
	}
}

func (p *printer) printWhile(s *While, depth int) {
	p.line(depth, "While")
	p.printExpr(s.Cond, depth+1)
	p.printStmt(s.Body, depth+1)
}

func (p *printer) printReturn(s *Return, depth int) {
	p.line(depth, "Return")
	if s.Value != nil {
		p.printExpr(s.Value, depth+1)
	}
}

func (p *printer) printExprStmt(s *ExprStmt, depth int) {
	p.line(depth, "ExprStmt")
	if s.Expr != nil {
		p.printExpr(s.Expr, depth+1)
	}
}

func (p *printer) printExpr(e Expr, depth int) {
	switch v := e.(type) {
	case *IntLit:
		p.line(depth, "IntLit %d", v.Value)
	case *FloatLit:
		p.line(depth, "FloatLit %g", v.Value)
	case *BoolLit:
		p.line(depth, "BoolLit %t", v.Value)
	case *VarRef:
		p.line(depth, "VarRef %s", v.Name)
	case *VarAssign:
		p.line(depth, "VarAssign %s", v.Target)
		p.printExpr(v.RHS, depth+1)
	case *Binary:
		p.line(depth, "Binary %s", v.Op)
		p.printExpr(v.Lhs, depth+1)
		p.printExpr(v.Rhs, depth+1)
	case *Unary:
		p.line(depth, "Unary %s", v.Op)
		p.printExpr(v.Operand, depth+1)
	case *Call:
		p.line(depth, "Call %s", v.Callee)
		for _, arg := range v.Args {
			p.printExpr(arg, depth+1)
		}
	}
}
