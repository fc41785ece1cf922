// Package ast defines the mini-C abstract syntax tree as a closed set of
// node variants (an interface plus one concrete struct per variant) and a
// deterministic pretty-printer over them. Ownership is strictly tree-shaped:
// every node owns its children outright, so the whole tree can be released
// together once lowering has consumed it.
package ast

// Node is implemented by every AST variant. It exists purely so the
// pretty-printer and lowering pass can hold a node generically; callers
// normally type-switch on the concrete variant.
type Node interface {
	node()
}

// Expr is implemented by every AST variant that can appear in value
// position.
type Expr interface {
	Node
	expr()
}

// Stmt is implemented by every AST variant that can appear in statement
// position inside a Block.
type Stmt interface {
	Node
	stmt()
}

// -----------------------------------------------------------------------------
// Literals and references

// IntLit is an integer literal.
type IntLit struct {
	Value int32
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value float32
}

// BoolLit is a boolean literal (`true`/`false`).
type BoolLit struct {
	Value bool
}

// VarRef is a reference to a named variable in value position.
type VarRef struct {
	Name string
}

func (*IntLit) node()   {}
func (*FloatLit) node() {}
func (*BoolLit) node()  {}
func (*VarRef) node()   {}
func (*IntLit) expr()   {}
func (*FloatLit) expr() {}
func (*BoolLit) expr()  {}
func (*VarRef) expr()   {}

// -----------------------------------------------------------------------------
// Assignment and declaration

// VarAssign assigns the value of RHS to the variable named Target. The
// parser only ever produces a VarAssign when it has seen `IDENT =`, so
// Target is always a bare identifier rather than an arbitrary lvalue
// expression.
type VarAssign struct {
	Target string
	RHS    Expr
}

func (*VarAssign) node() {}
func (*VarAssign) expr() {}
func (*VarAssign) stmt() {}

// VarDecl declares a local or global variable of a given declared type. The
// declared type is one of "int", "float", "bool" (never "void").
type VarDecl struct {
	Name string
	Type string
}

func (*VarDecl) node() {}
func (*VarDecl) stmt() {}

// -----------------------------------------------------------------------------
// Operators

// Binary is a binary operator application.
type Binary struct {
	Op       string
	Lhs, Rhs Expr
}

func (*Binary) node() {}
func (*Binary) expr() {}

// Unary is a unary operator application (`-` or `!`), right-associative and
// stackable (`- -x` parses as `-(-x)`).
type Unary struct {
	Op      string
	Operand Expr
}

func (*Unary) node() {}
func (*Unary) expr() {}

// -----------------------------------------------------------------------------
// Calls, parameters, prototypes

// Call is a function call expression.
type Call struct {
	Callee string
	Args   []Expr
}

func (*Call) node() {}
func (*Call) expr() {}

// Param is a single function parameter.
type Param struct {
	Name string
	Type string
}

// FuncProto is a function's name, return type, and parameter list, shared by
// FuncDef and Extern.
type FuncProto struct {
	Name       string
	ReturnType string
	Params     []Param
}

// FuncDef is a full function definition: a prototype plus a body.
type FuncDef struct {
	Proto FuncProto
	Body  *Block
}

func (*FuncDef) node() {}

// Extern is an external function declaration (no body).
type Extern struct {
	Proto FuncProto
}

func (*Extern) node() {}

// -----------------------------------------------------------------------------
// Control flow

// Block is an ordered sequence of local declarations followed by an ordered
// sequence of statements. Declarations precede statements syntactically but
// are all hoisted to function entry during lowering.
type Block struct {
	Decls []*VarDecl
	Stmts []Stmt
}

func (*Block) node() {}
func (*Block) stmt() {}

// If is an if/else construct. Else is nil when no else-clause was written.
type If struct {
	Cond Expr
	Then *Block
	Else *Block
}

func (*If) node() {}
func (*If) stmt() {}

// While is a while loop. Body is always a Stmt (a Block in the common case,
// but the grammar permits any single statement).
type While struct {
	Cond Expr
	Body Stmt
}

func (*While) node() {}
func (*While) stmt() {}

// Return is a return statement. Value is nil for a bare `return;`.
type Return struct {
	Value Expr
}

func (*Return) node() {}
func (*Return) stmt() {}

// ExprStmt wraps an expression used in statement position (an assignment, a
// call, or the empty statement `;` when Expr is nil).
type ExprStmt struct {
	Expr Expr // nil for the empty statement
}

func (*ExprStmt) node() {}
func (*ExprStmt) stmt() {}

// -----------------------------------------------------------------------------
// Root

// Decl is either a *FuncDef or a *VarDecl — the two kinds of top-level
// declaration a Root may hold.
type Decl interface {
	Node
	decl()
}

func (*FuncDef) decl() {}
func (*VarDecl) decl() {}

// Root is the root of the AST: an ordered list of externs followed by an
// ordered list of top-level declarations (function definitions or global
// variable declarations).
type Root struct {
	Externs []*Extern
	Decls   []Decl
}

func (*Root) node() {}
