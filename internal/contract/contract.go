// Package contract statically checks the declarations a puzzle program makes.
//
// The Go compiler already rejects most mistakes through the generic signatures of the parse and
// advent packages, but its errors are reported against the call site and are hard to read. The
// checks here report the offending declaration by name:
//
//   - A Grammar method must take no parameters, declare no type parameters and return exactly
//     one parse.Parser of its receiver type.
//   - A solver passed to advent.PartOne or advent.PartTwo must take exactly one argument and
//     return one value (two for the E variants, the second being an error).
//   - A program wiring one part must wire the other.
package contract

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strings"
)

// Diagnostic is a violated declaration contract.
type Diagnostic struct {
	Pos     token.Position
	Func    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Func, d.Message)
}

// partCall describes an advent constructor wrapping a solver.
type partCall struct {
	number  int
	results int
}

var partCalls = map[string]partCall{
	"PartOne":  {1, 1},
	"PartTwo":  {2, 1},
	"PartOneE": {1, 2},
	"PartTwoE": {2, 2},
}

// CheckSource parses a Go source file and checks its declarations.
func CheckSource(filename string, src []byte) ([]Diagnostic, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	return CheckFile(fset, f), nil
}

// CheckFile checks the declarations of a parsed file.
func CheckFile(fset *token.FileSet, f *ast.File) []Diagnostic {
	c := &checker{
		fset:  fset,
		funcs: map[string]*ast.FuncDecl{},
		parts: map[int]token.Pos{},
	}
	adventName := importName(f, "github.com/advent-go/advent")
	parseName := importName(f, "github.com/advent-go/advent/parse")
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if fd.Recv == nil {
			c.funcs[fd.Name.Name] = fd
			continue
		}
		if fd.Name.Name == "Grammar" {
			c.checkGrammar(fd, parseName)
		}
	}
	if adventName != "" {
		ast.Inspect(f, func(n ast.Node) bool {
			if call, ok := n.(*ast.CallExpr); ok {
				c.checkPartCall(call, adventName)
			}
			return true
		})
		c.checkPartsPaired()
	}
	sort.SliceStable(c.diags, func(i, j int) bool {
		return c.diags[i].Pos.Offset < c.diags[j].Pos.Offset
	})
	return c.diags
}

type checker struct {
	fset  *token.FileSet
	funcs map[string]*ast.FuncDecl
	parts map[int]token.Pos
	diags []Diagnostic
}

func (c *checker) report(pos token.Pos, name, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Pos:     c.fset.Position(pos),
		Func:    name,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) checkGrammar(fd *ast.FuncDecl, parseName string) {
	const prefix = "function signature wrong for grammar declaration"
	name := fd.Name.Name
	recv := receiverName(fd.Recv)
	if recv != "" {
		name = recv + "." + name
	}
	sig := fd.Type
	if sig.TypeParams != nil && sig.TypeParams.NumFields() > 0 {
		c.report(fd.Name.Pos(), name, "%s: must not declare type parameters", prefix)
	}
	if n := countFields(sig.Params); n != 0 {
		c.report(fd.Name.Pos(), name, "%s: takes %d parameters, expected none", prefix, n)
	}
	if n := countFields(sig.Results); n != 1 {
		c.report(fd.Name.Pos(), name, "%s: returns %d values, expected a single parser", prefix, n)
		return
	}
	if parseName == "" || recv == "" {
		return
	}
	if !isParserOf(sig.Results.List[0].Type, parseName, recv) {
		c.report(fd.Name.Pos(), name, "%s: must return %s.Parser[%s]", prefix, parseName, recv)
	}
}

func (c *checker) checkPartCall(call *ast.CallExpr, adventName string) {
	fn := call.Fun
	if index, ok := fn.(*ast.IndexListExpr); ok {
		fn = index.X
	} else if index, ok := fn.(*ast.IndexExpr); ok {
		fn = index.X
	}
	sel, ok := fn.(*ast.SelectorExpr)
	if !ok {
		return
	}
	if pkg, ok := sel.X.(*ast.Ident); !ok || pkg.Name != adventName {
		return
	}
	kind, ok := partCalls[sel.Sel.Name]
	if !ok {
		return
	}
	c.parts[kind.number] = call.Pos()
	if len(call.Args) != 2 {
		return
	}
	ident, ok := call.Args[1].(*ast.Ident)
	if !ok {
		return
	}
	fd, ok := c.funcs[ident.Name]
	if !ok {
		return
	}
	if n := countFields(fd.Type.Params); n != 1 {
		c.report(fd.Name.Pos(), fd.Name.Name, "part function must take exactly one argument, has %d", n)
	}
	if n := countFields(fd.Type.Results); n != kind.results {
		c.report(fd.Name.Pos(), fd.Name.Name, "part function passed to %s.%s must return %d values, has %d",
			adventName, sel.Sel.Name, kind.results, n)
	}
}

func (c *checker) checkPartsPaired() {
	one, hasOne := c.parts[1]
	two, hasTwo := c.parts[2]
	switch {
	case hasOne && !hasTwo:
		c.report(one, "main", "part one is wired but part two is missing")
	case hasTwo && !hasOne:
		c.report(two, "main", "part two is wired but part one is missing")
	}
}

// importName returns the name a package is imported under, or "" if it is not imported.
func importName(f *ast.File, path string) string {
	for _, imp := range f.Imports {
		if imp.Path.Value != `"`+path+`"` {
			continue
		}
		if imp.Name != nil {
			return imp.Name.Name
		}
		return path[strings.LastIndex(path, "/")+1:]
	}
	return ""
}

func receiverName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// countFields counts parameters, treating "a, b int" as two.
func countFields(fields *ast.FieldList) int {
	if fields == nil {
		return 0
	}
	return fields.NumFields()
}

func isParserOf(expr ast.Expr, parseName, typeName string) bool {
	index, ok := expr.(*ast.IndexExpr)
	if !ok {
		return false
	}
	sel, ok := index.X.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Parser" {
		return false
	}
	if pkg, ok := sel.X.(*ast.Ident); !ok || pkg.Name != parseName {
		return false
	}
	arg, ok := index.Index.(*ast.Ident)
	return ok && arg.Name == typeName
}
