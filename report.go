package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/NickyBoy89/genresolve/resolvedtype"
	"gopkg.in/yaml.v3"
)

// TypeReport lists the resolved members of one type
type TypeReport struct {
	Type         string             `yaml:"type"`
	Superclass   string             `yaml:"superclass,omitempty"`
	Interfaces   []string           `yaml:"interfaces,omitempty"`
	Fields       []FieldReport      `yaml:"fields,omitempty"`
	Constructors []ExecutableReport `yaml:"constructors,omitempty"`
	Methods      []ExecutableReport `yaml:"methods,omitempty"`
}

type FieldReport struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Modifiers string `yaml:"modifiers,omitempty"`
}

type ExecutableReport struct {
	Name       string            `yaml:"name"`
	Modifiers  string            `yaml:"modifiers,omitempty"`
	Parameters []ParameterReport `yaml:"parameters,omitempty"`
	// Returns is empty for constructors and void methods
	Returns string `yaml:"returns,omitempty"`
	// Declared is the signature as written, before resolution
	Declared string `yaml:"declared"`
}

type ParameterReport struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// buildReport resolves every member of the type. Types other than class types
// have no members, and only report their description
func buildReport(resolved resolvedtype.ResolvedType) (*TypeReport, error) {
	report := &TypeReport{Type: resolved.Description()}
	classType, ok := resolved.(*resolvedtype.ClassType)
	if !ok {
		return report, nil
	}

	super, err := classType.Superclass()
	if err != nil {
		return nil, err
	}
	if super != nil {
		report.Superclass = super.Description()
	}
	interfaces, err := classType.Interfaces()
	if err != nil {
		return nil, err
	}
	for _, iface := range interfaces {
		report.Interfaces = append(report.Interfaces, iface.Description())
	}

	fields, err := classType.Fields()
	if err != nil {
		return nil, err
	}
	for _, field := range fields {
		report.Fields = append(report.Fields, FieldReport{
			Name:      field.Name(),
			Type:      field.Type().Description(),
			Modifiers: field.Field().Modifiers.String(),
		})
	}

	constructors, err := classType.Constructors()
	if err != nil {
		return nil, err
	}
	for _, constructor := range constructors {
		report.Constructors = append(report.Constructors, ExecutableReport{
			Name:       classType.AssignableType().SimpleName(),
			Modifiers:  constructor.Constructor().Modifiers.String(),
			Parameters: parameterReports(constructor.Parameters()),
			Declared:   constructor.Describe(),
		})
	}

	methods, err := classType.Methods()
	if err != nil {
		return nil, err
	}
	for _, method := range methods {
		executable := ExecutableReport{
			Name:       method.Name(),
			Modifiers:  method.Method().Modifiers.String(),
			Parameters: parameterReports(method.Parameters()),
			Declared:   method.Describe(),
		}
		if returnType, ok := method.ReturnType(); ok {
			executable.Returns = returnType.Description()
		}
		report.Methods = append(report.Methods, executable)
	}
	return report, nil
}

func parameterReports(parameters []*resolvedtype.ResolvedParameter) []ParameterReport {
	reports := make([]ParameterReport, len(parameters))
	for i, parameter := range parameters {
		reports[i] = ParameterReport{Name: parameter.Name(), Type: parameter.Type().Description()}
	}
	return reports
}

// writeReports renders the reports as text or as a YAML document
func writeReports(out io.Writer, reports []*TypeReport, format string) error {
	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(reports); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return encoder.Close()
	case "text", "":
		for i, report := range reports {
			if i > 0 {
				fmt.Fprintln(out)
			}
			writeTextReport(out, report)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q, expected text or yaml", format)
}

func writeTextReport(out io.Writer, report *TypeReport) {
	fmt.Fprintln(out, report.Type)
	if report.Superclass != "" {
		fmt.Fprintf(out, "  extends %s\n", report.Superclass)
	}
	for _, iface := range report.Interfaces {
		fmt.Fprintf(out, "  implements %s\n", iface)
	}
	for _, field := range report.Fields {
		fmt.Fprintf(out, "  field %s: %s\n", field.Name, field.Type)
	}
	for _, constructor := range report.Constructors {
		fmt.Fprintf(out, "  constructor %s(%s)\n", constructor.Name, formatParameters(constructor.Parameters))
	}
	for _, method := range report.Methods {
		returns := method.Returns
		if returns == "" {
			returns = "void"
		}
		fmt.Fprintf(out, "  method %s(%s): %s\n", method.Name, formatParameters(method.Parameters), returns)
	}
}

func formatParameters(parameters []ParameterReport) string {
	formatted := make([]string, len(parameters))
	for i, parameter := range parameters {
		formatted[i] = parameter.Name + " " + parameter.Type
	}
	return strings.Join(formatted, ", ")
}
