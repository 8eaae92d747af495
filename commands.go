package main

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/genresolve/classpath"
	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/reflector"
	"github.com/NickyBoy89/genresolve/resolvedtype"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options are the flags shared by every command
type options struct {
	sources  []string
	logLevel string
	format   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "genresolve",
		Short: "Resolve the generic types of Java classes",
		Long: `genresolve reads Java source files and resolves the generic types of a
class's fields, constructors and methods against concrete type arguments.

Usage:
  genresolve resolve -s src 'com.example.Box<String>'
  genresolve resolve -s src com.example.Pair Integer 'List<String>'
  genresolve classes -s src
  genresolve structs -s src 'com.example.Box<String>'
  genresolve run -c genresolve.yaml`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(opts.logLevel, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringArrayVarP(&opts.sources, "source", "s", nil, "Java source directory or file (repeatable)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "text", "Report format: text or yaml")

	rootCmd.AddCommand(newResolveCommand(opts))
	rootCmd.AddCommand(newClassesCommand(opts))
	rootCmd.AddCommand(newStructsCommand(opts))
	rootCmd.AddCommand(newRunCommand(opts))
	return rootCmd
}

func newLoader(sources []string) (*classpath.Loader, error) {
	loader, err := classpath.New()
	if err != nil {
		return nil, err
	}
	if err := loader.LoadPaths(sources...); err != nil {
		return nil, err
	}
	if missing := loader.Missing(); len(missing) > 0 {
		log.WithField("classes", strings.Join(missing, ", ")).Info("Some referenced classes were not found in the sources")
	}
	return loader, nil
}

// resolveArgs resolves `CLASS [ARG...]`, or a single generic type such as `Box<String>`
func resolveArgs(loader *classpath.Loader, args []string) (resolvedtype.ResolvedType, error) {
	generic, err := namedGenericType(args[0], args[1:])
	if err != nil {
		return nil, err
	}
	return reflector.New(loader).Resolve(generic)
}

func newResolveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve CLASS [ARG...]",
		Short: "Print the resolved members of a class",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := newLoader(opts.sources)
			if err != nil {
				return err
			}
			resolved, err := resolveArgs(loader, args)
			if err != nil {
				return err
			}
			report, err := buildReport(resolved)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), []*TypeReport{report}, opts.format)
		},
	}
}

func newClassesCommand(opts *options) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the classes declared in the sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := newLoader(opts.sources)
			if err != nil {
				return err
			}
			for _, class := range loader.Classes() {
				if !all && isBundled(class) {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), declaredName(class))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include the bundled java.* classes")
	return cmd
}

func isBundled(class introspect.Class) bool {
	return strings.HasPrefix(class.Name(), "java.")
}

// declaredName renders a class with its type parameters, e.g. `demo.Pair<K, V extends java.lang.Number>`
func declaredName(class introspect.Class) string {
	variables := class.TypeParameters()
	if len(variables) == 0 {
		return class.Name()
	}
	bounds := make([]string, len(variables))
	for i, variable := range variables {
		bounds[i] = variable.BoundsString()
	}
	return class.Name() + "<" + strings.Join(bounds, ", ") + ">"
}

func newStructsCommand(opts *options) *cobra.Command {
	var packageName string
	cmd := &cobra.Command{
		Use:   "structs CLASS [ARG...]",
		Short: "Generate Go structs mirroring a resolved class's fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := newLoader(opts.sources)
			if err != nil {
				return err
			}
			resolved, err := resolveArgs(loader, args)
			if err != nil {
				return err
			}
			classType, ok := resolved.(*resolvedtype.ClassType)
			if !ok {
				return fmt.Errorf("%s is not a class type", resolved.Description())
			}
			decls, err := GenerateStructs(classType)
			if err != nil {
				return err
			}
			source, err := RenderGoFile(packageName, decls)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), source)
			return err
		},
	}
	cmd.Flags().StringVarP(&packageName, "package", "p", "model", "Package name of the generated file")
	return cmd
}

func newRunCommand(opts *options) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Resolve every target listed in a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			// Flags given on the command line win over the config file
			if !cmd.Flags().Changed("log-level") {
				if err := configureLogging(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			format := cfg.Format
			if cmd.Flags().Changed("format") {
				format = opts.format
			}

			loader, err := newLoader(append(cfg.Sources, opts.sources...))
			if err != nil {
				return err
			}
			resolver := reflector.New(loader)
			var reports []*TypeReport
			for _, target := range cfg.Targets {
				generic, err := target.GenericType(loader)
				if err != nil {
					return err
				}
				resolved, err := resolver.Resolve(generic)
				if err != nil {
					return fmt.Errorf("resolving %s: %w", target.Class, err)
				}
				report, err := buildReport(resolved)
				if err != nil {
					return err
				}
				reports = append(reports, report)
			}
			log.WithField("types", len(resolver.RegisteredTypes())).Info("Resolved config targets")
			return writeReports(cmd.OutOrStdout(), reports, format)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "genresolve.yaml", "Path to the config file")
	return cmd
}
