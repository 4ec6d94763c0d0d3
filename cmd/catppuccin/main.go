package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsvensson/catppuccin"
	"github.com/jsvensson/catppuccin/internal/config"
	"github.com/jsvensson/catppuccin/internal/engine"
	"github.com/jsvensson/catppuccin/internal/export"
	"github.com/jsvensson/catppuccin/internal/host"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/jsvensson/catppuccin/internal/preview"
	"github.com/jsvensson/catppuccin/internal/scheme"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagVerbose      int
	flagConfig       string
	flagNoBackground bool
	flagForms        []string
	flagOut          string
	flagExportOut    string
	flagTemplates    string
	flagApp          []string
	flagCheck        bool
	version          = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "catppuccin",
	Short:   "Catppuccin colorschemes for form-based text styling",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available colorschemes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range palette.Flavors() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", scheme.New(f).Name(), f.Appearance())
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show [colorscheme]",
	Short: "Apply a colorscheme and preview its forms",
	Long: "Apply a colorscheme to an in-memory host, with the options and overrides from --config, " +
		"and print each form styled the way the host would draw it.",
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var paletteCmd = &cobra.Command{
	Use:   "palette <flavor>",
	Short: "Print a flavor's palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := palette.ParseFlavor(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), preview.Palette(f))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <flavor>",
	Short: "Write a flavor's full form table as a config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render templates against a colorscheme",
	RunE:  runGenerate,
}

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate config files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format config files",
	Long:  "Format one or more config files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")

	showCmd.Flags().StringVar(&flagConfig, "config", "", "path to config HCL file")
	showCmd.Flags().BoolVar(&flagNoBackground, "no-background", false, "leave the host background unset")
	showCmd.Flags().StringArrayVar(&flagForms, "form", nil, "preview only these forms (can be repeated)")

	exportCmd.Flags().BoolVar(&flagNoBackground, "no-background", false, "export with no_background set")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "output file (default stdout)")

	generateCmd.Flags().StringVar(&flagConfig, "config", "", "path to config HCL file")
	generateCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	generateCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	generateCmd.Flags().StringArrayVar(&flagApp, "app", nil, "generate only for specific apps (can be repeated)")

	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads --config, or returns the defaults when it is unset.
func loadConfig() (*config.Config, error) {
	if flagConfig == "" {
		return &config.Config{ColorScheme: config.DefaultColorScheme}, nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	name := cfg.ColorScheme
	if len(args) == 1 {
		name = schemeName(args[0])
	}

	plugin := catppuccin.New().Modify(cfg.Modifier())
	if cfg.NoBackground || flagNoBackground {
		plugin.NoBackground()
	}

	h := host.New(nil)
	if err := plugin.Plug(h); err != nil {
		return err
	}
	if err := h.SetColorScheme(name); err != nil {
		if errors.Is(err, host.ErrUnknownColorScheme) {
			return fmt.Errorf("%w (available: %v)", err, h.ColorSchemes())
		}
		return err
	}

	names := flagForms
	if len(names) == 0 {
		names = h.Forms().Names()
	}
	fmt.Fprint(cmd.OutOrStdout(), preview.Forms(h.Active(), h.Forms(), names))
	return nil
}

// schemeName accepts a bare flavor such as "mocha" as well as the full
// scheme name. Anything else is passed through for the host to reject.
func schemeName(arg string) string {
	f, err := scheme.ParseName(arg)
	if err != nil {
		return arg
	}
	return scheme.New(f).Name()
}

func runExport(cmd *cobra.Command, args []string) error {
	f, err := palette.ParseFlavor(args[0])
	if err != nil {
		return err
	}

	if flagExportOut == "" {
		return export.Write(cmd.OutOrStdout(), f, flagNoBackground)
	}

	out, err := os.Create(flagExportOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagExportOut, err)
	}
	defer out.Close()

	if err := export.Write(out, f, flagNoBackground); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", scheme.New(f).Name(), flagExportOut)
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := cfg.Scheme()
	if err != nil {
		return err
	}

	e := &engine.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Apps:         flagApp,
	}

	if err := e.Run(s); err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s files in %s\n", s.Name(), flagOut)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	hasErrors := false
	for _, path := range args {
		if _, err := config.Load(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			hasErrors = true
		}
	}
	if hasErrors {
		os.Exit(1)
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := export.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
