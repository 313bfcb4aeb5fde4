package parser_test

import (
	"bantamc/pkg/ast"
	"bantamc/pkg/lexer"
	"bantamc/pkg/parser"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// ignorePositions lets tree comparisons focus on shape rather than offsets.
var ignorePositions = cmpopts.IgnoreTypes(lexer.Position{})

func parse(t *testing.T, src string) (*ast.Program, []parser.SyntaxError) {
	t.Helper()

	p := parser.NewParser(lexer.NewLexer(src), "test.btm")
	return p.Parse(), p.Errors()
}

func TestParseClassWithMembers(t *testing.T) {
	src := `
class Main extends Object {
	int count = 0;
	String name;
	int[] xs;

	void main() {
		int i = 1;
		count = count + i * 2;
		this.name = "bantam";
		print(count, name);
		return;
	}
}`

	program, errs := parse(t, src)
	require.Empty(t, errs)

	want := &ast.Program{Classes: []*ast.Class{{
		Name:     "Main",
		Parent:   "Object",
		Filename: "test.btm",
		Members: []ast.Member{
			&ast.Field{Type: "int", Name: "count", Init: &ast.IntLit{Value: "0"}},
			&ast.Field{Type: "String", Name: "name"},
			&ast.Field{Type: "int[]", Name: "xs"},
			&ast.Method{
				ReturnType: "void",
				Name:       "main",
				Formals:    []*ast.Formal{},
				Body: []ast.Stmt{
					&ast.DeclStmt{Type: "int", Name: "i", Init: &ast.IntLit{Value: "1"}},
					&ast.ExprStmt{Expr: &ast.AssignExpr{
						Target: &ast.VarExpr{Name: "count"},
						Value: &ast.BinaryExpr{
							Op:   lexer.PLUS,
							Left: &ast.VarExpr{Name: "count"},
							Right: &ast.BinaryExpr{
								Op:    lexer.MULT,
								Left:  &ast.VarExpr{Name: "i"},
								Right: &ast.IntLit{Value: "2"},
							},
						},
					}},
					&ast.ExprStmt{Expr: &ast.AssignExpr{
						Target: &ast.VarExpr{Ref: &ast.VarExpr{Name: "this"}, Name: "name"},
						Value:  &ast.StringLit{Value: "bantam"},
					}},
					&ast.ExprStmt{Expr: &ast.DispatchExpr{
						Method: "print",
						Args:   []ast.Expr{&ast.VarExpr{Name: "count"}, &ast.VarExpr{Name: "name"}},
					}},
					&ast.ReturnStmt{},
				},
			},
		},
	}}}

	if diff := cmp.Diff(want, program, ignorePositions); diff != "" {
		t.Errorf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestParseControlFlow(t *testing.T) {
	src := `
class A {
	int f(int n, Foo[] fs) {
		for (i = 0; i < n; i++) {
			if (fs[i] instanceof Bar) break; else fs[i].run();
		}
		for (;;) break;
		while (!done && n >= 0) n--;
		Bar b = (Bar)(fs[0]);
		Foo[] more = new Foo[n + 1];
		return -n;
	}
}`

	program, errs := parse(t, src)
	require.Empty(t, errs)
	require.Len(t, program.Classes, 1)

	method, ok := program.Classes[0].Members[0].(*ast.Method)
	require.True(t, ok)
	wantFormals := []*ast.Formal{{Type: "int", Name: "n"}, {Type: "Foo[]", Name: "fs"}}
	if diff := cmp.Diff(wantFormals, method.Formals, ignorePositions); diff != "" {
		t.Errorf("formals mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, method.Body, 6)

	loop, ok := method.Body[0].(*ast.ForStmt)
	require.True(t, ok)
	require.NotNil(t, loop.Init)
	require.NotNil(t, loop.Cond)
	require.NotNil(t, loop.Update)

	empty, ok := method.Body[1].(*ast.ForStmt)
	require.True(t, ok)
	require.Nil(t, empty.Init)
	require.Nil(t, empty.Cond)
	require.Nil(t, empty.Update)
	require.IsType(t, &ast.BreakStmt{}, empty.Body)

	cast, ok := method.Body[3].(*ast.DeclStmt)
	require.True(t, ok)
	require.IsType(t, &ast.CastExpr{}, cast.Init)

	arr, ok := method.Body[4].(*ast.DeclStmt)
	require.True(t, ok)
	require.Equal(t, "Foo[]", arr.Type)
	require.IsType(t, &ast.NewArrayExpr{}, arr.Init)

	ret, ok := method.Body[5].(*ast.ReturnStmt)
	require.True(t, ok)
	wantRet := &ast.UnaryExpr{Op: lexer.MINUS, Expr: &ast.VarExpr{Name: "n"}}
	if diff := cmp.Diff(wantRet, ret.Value, ignorePositions); diff != "" {
		t.Errorf("return value mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMultipleClasses(t *testing.T) {
	program, errs := parse(t, "class A {} class B extends A {}")
	require.Empty(t, errs)
	require.Len(t, program.Classes, 2)
	require.Equal(t, "B", program.Classes[1].Name)
	require.Equal(t, "A", program.Classes[1].Parent)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	program, errs := parse(t, "class A { void m() { a = b = 1; } }")
	require.Empty(t, errs)

	method := program.Classes[0].Members[0].(*ast.Method)
	stmt := method.Body[0].(*ast.ExprStmt)

	want := &ast.AssignExpr{
		Target: &ast.VarExpr{Name: "a"},
		Value: &ast.AssignExpr{
			Target: &ast.VarExpr{Name: "b"},
			Value:  &ast.IntLit{Value: "1"},
		},
	}
	if diff := cmp.Diff(want, stmt.Expr, ignorePositions); diff != "" {
		t.Errorf("assignment mismatch (-want +got):\n%s", diff)
	}
}
