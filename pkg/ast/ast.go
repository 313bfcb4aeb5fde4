// Package ast defines the syntax tree produced by the parser.
package ast

import "bantamc/pkg/lexer"

// Program is every class declared across all input files.
type Program struct {
	Classes []*Class
}

type Class struct {
	Name     string
	Parent   string // empty when no extends clause is given
	Filename string
	Members  []Member
	Pos      lexer.Position
}

// Member is either a *Field or a *Method.
type Member interface {
	MemberName() string
	Position() lexer.Position
}

type Field struct {
	Type string
	Name string
	Init Expr // nil when the field has no initializer
	Pos  lexer.Position
}

type Method struct {
	ReturnType string
	Name       string
	Formals    []*Formal
	Body       []Stmt
	Pos        lexer.Position
}

type Formal struct {
	Type string
	Name string
	Pos  lexer.Position
}

func (f *Field) MemberName() string        { return f.Name }
func (f *Field) Position() lexer.Position  { return f.Pos }
func (m *Method) MemberName() string       { return m.Name }
func (m *Method) Position() lexer.Position { return m.Pos }

type Stmt interface {
	stmtNode()
}

type DeclStmt struct {
	Type string
	Name string
	Init Expr
	Pos  lexer.Position
}

type ExprStmt struct {
	Expr Expr
}

type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil without an else branch
	Pos  lexer.Position
}

type WhileStmt struct {
	Cond Expr
	Body Stmt
	Pos  lexer.Position
}

// ForStmt has optional Init, Cond and Update expressions.
type ForStmt struct {
	Init   Expr
	Cond   Expr
	Update Expr
	Body   Stmt
	Pos    lexer.Position
}

type BreakStmt struct {
	Pos lexer.Position
}

type ReturnStmt struct {
	Value Expr // nil for a bare return
	Pos   lexer.Position
}

type BlockStmt struct {
	Stmts []Stmt
	Pos   lexer.Position
}

func (*DeclStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()   {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()    {}
func (*BreakStmt) stmtNode()  {}
func (*ReturnStmt) stmtNode() {}
func (*BlockStmt) stmtNode()  {}

type Expr interface {
	exprNode()
}

// AssignExpr assigns to Target, which is a *VarExpr or an *IndexExpr.
type AssignExpr struct {
	Target Expr
	Value  Expr
	Pos    lexer.Position
}

type DispatchExpr struct {
	Receiver Expr // nil for an implicit this
	Method   string
	Args     []Expr
	Pos      lexer.Position
}

type NewExpr struct {
	Type string
	Pos  lexer.Position
}

type NewArrayExpr struct {
	Type string
	Size Expr
	Pos  lexer.Position
}

type InstanceofExpr struct {
	Expr Expr
	Type string
	Pos  lexer.Position
}

type CastExpr struct {
	Type string
	Expr Expr
	Pos  lexer.Position
}

type BinaryExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	Pos   lexer.Position
}

// UnaryExpr covers negation, logical not and the increment operators.
// Postfix is only meaningful for ++ and --.
type UnaryExpr struct {
	Op      lexer.TokenType
	Expr    Expr
	Postfix bool
	Pos     lexer.Position
}

type VarExpr struct {
	Ref  Expr // nil, or the object the field is selected from
	Name string
	Pos  lexer.Position
}

type IndexExpr struct {
	Array Expr
	Index Expr
	Pos   lexer.Position
}

type IntLit struct {
	Value string
	Pos   lexer.Position
}

type BoolLit struct {
	Value bool
	Pos   lexer.Position
}

type StringLit struct {
	Value string
	Pos   lexer.Position
}

func (*AssignExpr) exprNode()     {}
func (*DispatchExpr) exprNode()   {}
func (*NewExpr) exprNode()        {}
func (*NewArrayExpr) exprNode()   {}
func (*InstanceofExpr) exprNode() {}
func (*CastExpr) exprNode()       {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*VarExpr) exprNode()        {}
func (*IndexExpr) exprNode()      {}
func (*IntLit) exprNode()         {}
func (*BoolLit) exprNode()        {}
func (*StringLit) exprNode()      {}
