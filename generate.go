package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"strings"
	"unicode"

	"github.com/NickyBoy89/genresolve/resolvedtype"
	log "github.com/sirupsen/logrus"
)

// Java classes that map onto Go builtin types. Boxed types become pointers,
// since they can be null
var builtinTypes = map[string]string{
	"boolean": "bool",
	"byte":    "int8",
	"char":    "rune",
	"short":   "int16",
	"int":     "int32",
	"long":    "int64",
	"float":   "float32",
	"double":  "float64",

	"java.lang.Boolean":   "*bool",
	"java.lang.Byte":      "*int8",
	"java.lang.Character": "*rune",
	"java.lang.Short":     "*int16",
	"java.lang.Integer":   "*int32",
	"java.lang.Long":      "*int64",
	"java.lang.Float":     "*float32",
	"java.lang.Double":    "*float64",
	"java.lang.String":    "string",
	"java.lang.Object":    "any",
}

var sliceTypes = map[string]bool{
	"java.lang.Iterable":   true,
	"java.util.Collection": true,
	"java.util.List":       true,
	"java.util.ArrayList":  true,
}

var mapTypes = map[string]bool{
	"java.util.Map":     true,
	"java.util.HashMap": true,
}

// GenStruct is a utility method for generating the ast representation of
// a struct, given its name and fields
func GenStruct(structName string, structFields *ast.FieldList) ast.Decl {
	return &ast.GenDecl{
		Tok: token.TYPE,
		Specs: []ast.Spec{
			&ast.TypeSpec{
				Name: &ast.Ident{Name: structName},
				Type: &ast.StructType{Fields: structFields},
			},
		},
	}
}

// StructName derives an exported Go identifier from a resolved type's simple
// description: Pair<String, List<Long>> -> PairStringListLong
func StructName(resolved resolvedtype.ResolvedType) string {
	description := strings.ReplaceAll(resolved.SimpleDescription(), "[]", "Array")
	var name strings.Builder
	upper := true
	for _, ch := range description {
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
			upper = true
			continue
		}
		if upper {
			ch = unicode.ToUpper(ch)
			upper = false
		}
		name.WriteRune(ch)
	}
	return name.String()
}

// FieldName exports a Java field name, dropping characters Go does not allow
func FieldName(javaName string) string {
	cleaned := strings.Map(func(ch rune) rune {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' {
			return ch
		}
		return -1
	}, javaName)
	if cleaned == "" {
		return ""
	}
	return string(unicode.ToUpper(rune(cleaned[0]))) + cleaned[1:]
}

// structGenerator emits one struct per resolved class type reachable through
// instance fields, each only once
type structGenerator struct {
	decls     []ast.Decl
	generated map[string]bool
}

// GenerateStructs emits the Go structs that mirror the instance fields of the
// resolved class type, and of every class type those fields refer to
func GenerateStructs(root *resolvedtype.ClassType) ([]ast.Decl, error) {
	gen := &structGenerator{generated: make(map[string]bool)}
	if err := gen.generate(root); err != nil {
		return nil, err
	}
	return gen.decls, nil
}

func (gen *structGenerator) generate(classType *resolvedtype.ClassType) error {
	name := StructName(classType)
	if gen.generated[name] {
		return nil
	}
	gen.generated[name] = true

	fields, err := classType.Fields()
	if err != nil {
		return err
	}

	// Reserve the position before generating any referenced structs
	index := len(gen.decls)
	gen.decls = append(gen.decls, nil)

	structFields := &ast.FieldList{}
	for _, field := range fields {
		if field.IsStatic() || field.IsTransient() {
			continue
		}
		fieldType, err := gen.goTypeExpr(field.Type())
		if err != nil {
			return fmt.Errorf("field %s of %s: %w", field.Name(), classType.Description(), err)
		}
		structFields.List = append(structFields.List, &ast.Field{
			Names: []*ast.Ident{{Name: FieldName(field.Name())}},
			Type:  fieldType,
		})
	}
	gen.decls[index] = GenStruct(name, structFields)
	return nil
}

// goTypeExpr maps a resolved Java type to a Go type, generating structs for
// the class types it refers to
func (gen *structGenerator) goTypeExpr(resolved resolvedtype.ResolvedType) (ast.Expr, error) {
	switch typed := resolved.(type) {
	case *resolvedtype.ArrayType:
		elem, err := gen.goTypeExpr(typed.ComponentType())
		if err != nil {
			return nil, err
		}
		return &ast.ArrayType{Elt: elem}, nil
	case *resolvedtype.ClassType:
		return gen.classTypeExpr(typed)
	}
	log.WithField("type", resolved.Description()).Debug("No concrete Go type, using any")
	return &ast.Ident{Name: "any"}, nil
}

func (gen *structGenerator) classTypeExpr(classType *resolvedtype.ClassType) (ast.Expr, error) {
	rawName := classType.AssignableType().Name()
	if builtin, ok := builtinTypes[rawName]; ok {
		if strings.HasPrefix(builtin, "*") {
			return &ast.StarExpr{X: &ast.Ident{Name: builtin[1:]}}, nil
		}
		return &ast.Ident{Name: builtin}, nil
	}

	args := classType.TypeParameters()
	switch {
	case sliceTypes[rawName] && len(args) == 1:
		elem, err := gen.goTypeExpr(args[0])
		if err != nil {
			return nil, err
		}
		return &ast.ArrayType{Elt: elem}, nil
	case rawName == "java.util.Set" && len(args) == 1:
		key, err := gen.goTypeExpr(args[0])
		if err != nil {
			return nil, err
		}
		return &ast.MapType{Key: key, Value: &ast.StructType{Fields: &ast.FieldList{}}}, nil
	case mapTypes[rawName] && len(args) == 2:
		key, err := gen.goTypeExpr(args[0])
		if err != nil {
			return nil, err
		}
		value, err := gen.goTypeExpr(args[1])
		if err != nil {
			return nil, err
		}
		return &ast.MapType{Key: key, Value: value}, nil
	case rawName == "java.util.Optional" && len(args) == 1:
		elem, err := gen.goTypeExpr(args[0])
		if err != nil {
			return nil, err
		}
		return &ast.StarExpr{X: elem}, nil
	}

	if classType.IsInterface() || classType.AssignableType().IsPrimitive() {
		return &ast.Ident{Name: "any"}, nil
	}
	if err := gen.generate(classType); err != nil {
		return nil, err
	}
	return &ast.StarExpr{X: &ast.Ident{Name: StructName(classType)}}, nil
}

// RenderGoFile prints the declarations as a formatted Go source file
func RenderGoFile(packageName string, decls []ast.Decl) (string, error) {
	file := &ast.File{
		Name:  &ast.Ident{Name: packageName},
		Decls: decls,
	}
	var out bytes.Buffer
	if err := format.Node(&out, token.NewFileSet(), file); err != nil {
		return "", fmt.Errorf("printing generated code: %w", err)
	}
	return out.String(), nil
}
