// Package semant performs the class-level semantic checks of a Bantam Java
// program: the class hierarchy must be well formed and a Main class with a
// main method must exist.
package semant

import (
	"bantamc/pkg/ast"
	"bantamc/pkg/color"
	"bantamc/pkg/lexer"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
)

// Builtin classes every program may use without declaring them.
var Builtins = []string{"Object", "String", "TextIO", "Sys"}

// Classes that user classes may not extend.
var sealed = map[string]bool{"String": true, "TextIO": true, "Sys": true}

// Error is a semantic error tied to a source location
type Error struct {
	Filename string
	Pos      lexer.Position
	Message  string
}

func (e Error) Error() string {
	if e.Filename == "" {
		return e.Message
	}

	return fmt.Sprintf("%s:%s: %s", e.Filename, e.Pos, e.Message)
}

// Render renders the error for the terminal
func (e Error) Render() string {
	if e.Filename == "" {
		return color.Error(e.Message)
	}

	return color.ErrorWithPosition(e.Filename, e.Pos.Line, e.Pos.Column, e.Message)
}

type analyzer struct {
	classes map[string]*ast.Class
	errors  []Error
}

// Check runs every class-level check over program and returns the errors found, in source order.
func Check(program *ast.Program) []Error {
	a := &analyzer{classes: map[string]*ast.Class{}}

	a.collectClasses(program)
	a.checkParents(program)
	a.checkCycles(program)
	for _, class := range program.Classes {
		a.checkMembers(class)
	}
	a.checkMain()

	log.Debug("Semantic analysis finished", "classes", len(program.Classes), "errors", len(a.errors))

	return a.errors
}

func (a *analyzer) addError(class *ast.Class, pos lexer.Position, format string, args ...any) {
	e := Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
	if class != nil {
		e.Filename = class.Filename
	}

	a.errors = append(a.errors, e)
}

func (a *analyzer) collectClasses(program *ast.Program) {
	builtin := map[string]bool{}
	for _, name := range Builtins {
		builtin[name] = true
	}

	for _, class := range program.Classes {
		switch {
		case builtin[class.Name]:
			a.addError(class, class.Pos, "Built-in class '%s' cannot be redefined", class.Name)
		case a.classes[class.Name] != nil:
			prev := a.classes[class.Name]
			a.addError(class, class.Pos, "Class '%s' is already defined at %s:%s", class.Name, prev.Filename, prev.Pos)
		default:
			a.classes[class.Name] = class
		}
	}
}

// parentOf resolves the parent name of class, defaulting to Object
func parentOf(class *ast.Class) string {
	if class.Parent == "" {
		return "Object"
	}

	return class.Parent
}

func (a *analyzer) isClass(name string) bool {
	return a.classes[name] != nil || slices.Contains(Builtins, name)
}

func (a *analyzer) checkParents(program *ast.Program) {
	for _, class := range program.Classes {
		parent := parentOf(class)

		switch {
		case !a.isClass(parent):
			a.addError(class, class.Pos, "Class '%s' extends undefined class '%s'", class.Name, parent)
		case sealed[parent]:
			a.addError(class, class.Pos, "Class '%s' cannot extend built-in class '%s'", class.Name, parent)
		}
	}
}

// checkCycles reports every class that sits on an inheritance cycle, once per cycle.
func (a *analyzer) checkCycles(program *ast.Program) {
	reported := map[string]bool{}

	for _, class := range program.Classes {
		if a.classes[class.Name] != class || reported[class.Name] {
			continue
		}

		seen := map[string]bool{}
		name := class.Name
		for {
			c := a.classes[name]
			if c == nil || seen[name] {
				break
			}
			seen[name] = true
			name = parentOf(c)
		}

		// The walk ended on a class already visited: it and its ancestors form a cycle.
		if !seen[name] || reported[name] {
			continue
		}
		start := name
		for {
			reported[name] = true
			name = parentOf(a.classes[name])
			if name == start {
				break
			}
		}
		a.addError(a.classes[start], a.classes[start].Pos, "Inheritance cycle involving class '%s'", start)
	}
}

func (a *analyzer) checkMembers(class *ast.Class) {
	// Fields and methods live in separate namespaces.
	seen := map[string]map[string]bool{"Field": {}, "Method": {}}

	for _, member := range class.Members {
		kind := "Field"
		if _, ok := member.(*ast.Method); ok {
			kind = "Method"
		}

		name := member.MemberName()
		if seen[kind][name] {
			a.addError(class, member.Position(), "%s '%s' is already defined in class '%s'", kind, name, class.Name)
		}
		seen[kind][name] = true

		if m, ok := member.(*ast.Method); ok {
			a.checkFormals(class, m)
		}
	}
}

func (a *analyzer) checkFormals(class *ast.Class, m *ast.Method) {
	formals := map[string]bool{}
	for _, f := range m.Formals {
		if formals[f.Name] {
			a.addError(class, f.Pos, "Parameter '%s' is already defined in method '%s'", f.Name, m.Name)
		}
		formals[f.Name] = true
	}
}

func (a *analyzer) checkMain() {
	main := a.classes["Main"]
	if main == nil {
		a.addError(nil, lexer.Position{}, "Program does not define a class 'Main'")
		return
	}

	for _, member := range main.Members {
		m, ok := member.(*ast.Method)
		if !ok || m.Name != "main" {
			continue
		}
		if m.ReturnType != "void" || len(m.Formals) != 0 {
			a.addError(main, m.Pos, "Method 'main' in class 'Main' must be declared as 'void main()'")
		}
		return
	}

	a.addError(main, main.Pos, "Class 'Main' does not define a method 'main'")
}
