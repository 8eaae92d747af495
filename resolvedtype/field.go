package resolvedtype

import (
	"fmt"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/validate"
	"golang.org/x/exp/slices"
)

// ResolvedField is a declared field with its resolved type
type ResolvedField struct {
	resolved ResolvedType
	field    *introspect.Field
}

// ResolveFields resolves the non-synthetic fields the class declares
func ResolveFields(fullType *ClassType) ([]*ResolvedField, error) {
	if err := validate.NotNil(fullType, "fullType"); err != nil {
		return nil, err
	}
	var fields []*ResolvedField
	for _, field := range fullType.AssignableType().DeclaredFields() {
		if field.Synthetic {
			continue
		}
		resolved, err := ResolveField(field, fullType)
		if err != nil {
			return nil, err
		}
		fields = append(fields, resolved)
	}
	return slices.Clip(fields), nil
}

func ResolveField(field *introspect.Field, fullType *ClassType) (*ResolvedField, error) {
	if err := validate.NotNil(field, "field"); err != nil {
		return nil, err
	}
	if err := validate.NotNil(fullType, "fullType"); err != nil {
		return nil, err
	}
	resolved, err := ResolveType(field.GenericType, fullType)
	if err != nil {
		return nil, fmt.Errorf("resolving field %s of %s: %w", field.Name, fullType.Description(), err)
	}
	return &ResolvedField{resolved: resolved, field: field}, nil
}

func (f *ResolvedField) Type() ResolvedType {
	return f.resolved
}

func (f *ResolvedField) Name() string {
	return f.field.Name
}

func (f *ResolvedField) Field() *introspect.Field {
	return f.field
}

func (f *ResolvedField) IsPublic() bool {
	return f.field.Modifiers.IsPublic()
}

func (f *ResolvedField) IsStatic() bool {
	return f.field.Modifiers.IsStatic()
}

func (f *ResolvedField) IsTransient() bool {
	return f.field.Modifiers.IsTransient()
}

// Describe renders the field the way Java's Field.toGenericString does
func (f *ResolvedField) Describe() string {
	description := f.field.GenericType.TypeName() + " " + f.field.DeclaringClass.TypeName() + "." + f.field.Name
	if modifiers := f.field.Modifiers.String(); modifiers != "" {
		return modifiers + " " + description
	}
	return description
}
