package hasura

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

//go:embed documents/*.graphql
var documentsFS embed.FS

// Variable is one declared operation variable.
type Variable struct {
	Name string
	Type string
	// Required is true for non-null variables without a default value.
	Required bool
}

// Operation is a single named GraphQL operation, printed together with only
// the fragments it references.
type Operation struct {
	Name      string
	Kind      ast.Operation
	Source    string
	Query     string
	Variables []Variable
}

// CheckVariables verifies vars against the declared variables. Hasura
// rejects undeclared variables, so both directions are checked.
func (o *Operation) CheckVariables(vars map[string]any) error {
	declared := make(map[string]struct{}, len(o.Variables))
	for _, v := range o.Variables {
		declared[v.Name] = struct{}{}
		if !v.Required {
			continue
		}
		if val, ok := vars[v.Name]; !ok || val == nil {
			return &VariableError{Operation: o.Name, Variable: v.Name, Reason: "required variable missing"}
		}
	}
	for name := range vars {
		if _, ok := declared[name]; !ok {
			return &VariableError{Operation: o.Name, Variable: name, Reason: "variable not declared"}
		}
	}
	return nil
}

// Catalog indexes the static documents by operation name.
type Catalog struct {
	ops map[string]*Operation
}

// LoadCatalog parses the embedded documents.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(documentsFS, "documents/*.graphql")
}

// ParseCatalog parses every file matching pattern in fsys. Operation names
// must be unique across files and every operation must be named.
func ParseCatalog(fsys fs.FS, pattern string) (*Catalog, error) {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob documents: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no documents match %q", pattern)
	}
	sort.Strings(files)

	c := &Catalog{ops: make(map[string]*Operation)}
	for _, file := range files {
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		if err := c.add(path.Base(file), string(raw)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(name, input string) error {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Name: name, Input: input})
	if gqlErr != nil {
		return fmt.Errorf("parse %s: %w", name, gqlErr)
	}

	for _, op := range doc.Operations {
		if op.Name == "" {
			return fmt.Errorf("%s: anonymous operations are not allowed", name)
		}
		if prev, dup := c.ops[op.Name]; dup {
			return fmt.Errorf("%s: operation %s already defined in %s", name, op.Name, prev.Source)
		}

		frags, err := referencedFragments(doc, op.SelectionSet)
		if err != nil {
			return fmt.Errorf("%s: operation %s: %w", name, op.Name, err)
		}

		var buf bytes.Buffer
		standalone := &ast.QueryDocument{
			Operations: ast.OperationList{op},
			Fragments:  frags,
		}
		formatter.NewFormatter(&buf).FormatQueryDocument(standalone)

		vars := make([]Variable, 0, len(op.VariableDefinitions))
		for _, vd := range op.VariableDefinitions {
			vars = append(vars, Variable{
				Name:     vd.Variable,
				Type:     vd.Type.String(),
				Required: vd.Type.NonNull && vd.DefaultValue == nil,
			})
		}

		c.ops[op.Name] = &Operation{
			Name:      op.Name,
			Kind:      op.Operation,
			Source:    name,
			Query:     strings.TrimSpace(buf.String()),
			Variables: vars,
		}
	}
	return nil
}

// referencedFragments collects the fragments reachable from set, in
// definition order.
func referencedFragments(doc *ast.QueryDocument, set ast.SelectionSet) (ast.FragmentDefinitionList, error) {
	seen := make(map[string]bool)
	var walk func(ast.SelectionSet) error
	walk = func(s ast.SelectionSet) error {
		for _, sel := range s {
			switch v := sel.(type) {
			case *ast.Field:
				if err := walk(v.SelectionSet); err != nil {
					return err
				}
			case *ast.InlineFragment:
				if err := walk(v.SelectionSet); err != nil {
					return err
				}
			case *ast.FragmentSpread:
				if seen[v.Name] {
					continue
				}
				def := doc.Fragments.ForName(v.Name)
				if def == nil {
					return fmt.Errorf("unknown fragment %s", v.Name)
				}
				seen[v.Name] = true
				if err := walk(def.SelectionSet); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(set); err != nil {
		return nil, err
	}

	var out ast.FragmentDefinitionList
	for _, f := range doc.Fragments {
		if seen[f.Name] {
			out = append(out, f)
		}
	}
	return out, nil
}

// Lookup returns the named operation.
func (c *Catalog) Lookup(name string) (*Operation, bool) {
	op, ok := c.ops[name]
	return op, ok
}

// Names lists every operation name in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.ops))
	for n := range c.ops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
