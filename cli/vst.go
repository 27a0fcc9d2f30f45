package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/varnamproject/gouast/gouast"
	"github.com/varnamproject/gouast/vst"
)

func newVSTCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vst",
		Short: "Work with VST files, the Script Tables stored in SQLite.",
		Args:  cobra.NoArgs,
	}

	compile := &cobra.Command{
		Use:   "compile <path>",
		Short: "Compile the Script Tables into a VST file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandCompile(cmd, v, args[0])
		},
	}

	defaults := vst.DefaultSchemeDetails()
	compile.Flags().String("scheme-id", defaults.Identifier, "scheme identifier stored in the file")
	compile.Flags().String("author", "", "author stored in the file")
	v.BindPFlag("vst.scheme-id", compile.Flags().Lookup("scheme-id"))
	v.BindPFlag("vst.author", compile.Flags().Lookup("author"))
	v.SetDefault("vst.scheme-id", defaults.Identifier)

	dump := &cobra.Command{
		Use:   "dump <path>",
		Short: "Print the symbols of a VST file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return commandDump(cmd, args[0], format)
		},
	}
	dump.Flags().String("format", "table", "output format: table, json or yaml")

	lookup := &cobra.Command{
		Use:   "lookup <path> <category> <pattern>",
		Short: "Print the glyph of a pattern in a VST file.",
		Long:  "Print the glyph of a pattern in a VST file. The category is one of vowel, vowel-sign, consonant, digit, misc or special.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandLookup(cmd, args[0], args[1], args[2])
		},
	}

	cmd.AddCommand(compile, dump, lookup)

	return cmd
}

// openExisting doesn't create the file like vst.Open would
func openExisting(vstPath string) (*vst.VST, error) {
	if _, err := os.Stat(vstPath); err != nil {
		return nil, err
	}
	return vst.Open(vstPath)
}

func commandCompile(cmd *cobra.Command, v *viper.Viper, vstPath string) error {
	sd := vst.DefaultSchemeDetails()
	sd.Identifier = v.GetString("vst.scheme-id")
	sd.Author = v.GetString("vst.author")

	file, err := vst.Open(vstPath)
	if err != nil {
		return err
	}
	defer file.Close()

	symbols := gouast.Symbols()
	if err := file.Compile(cmd.Context(), symbols, sd); err != nil {
		return fmt.Errorf("compiling %s: %w", vstPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Compiled %d symbols into %s\n", len(symbols), vstPath)

	return nil
}

type dumpSymbol struct {
	Type    string `json:"type"`
	Pattern string `json:"pattern"`
	Value1  string `json:"value1"`
	Value2  string `json:"value2,omitempty"`
	Tag     string `json:"tag,omitempty"`
}

type dumpScheme struct {
	Identifier   string       `json:"id"`
	LangCode     string       `json:"lang-code"`
	DisplayName  string       `json:"display-name"`
	Author       string       `json:"author,omitempty"`
	CompiledDate string       `json:"compiled-date"`
	IsStable     bool         `json:"stable"`
	Symbols      []dumpSymbol `json:"symbols"`
}

func commandDump(cmd *cobra.Command, vstPath string, format string) error {
	file, err := openExisting(vstPath)
	if err != nil {
		return err
	}
	defer file.Close()

	sd, err := file.SchemeDetails(cmd.Context())
	if err != nil {
		return err
	}

	symbols, err := file.SearchSymbolTable(cmd.Context(), vst.NewSearchSymbol())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch format {
	case "table":
		fmt.Fprintf(out, "%s (%s) %s, compiled %s\n", sd.Identifier, sd.LangCode, sd.DisplayName, sd.CompiledDate)

		table := tablewriter.NewWriter(out)
		table.Header("Type", "Pattern", "Devanagari", "Gujarati", "Tag")
		for _, symbol := range symbols {
			row := []string{symbol.Type.String(), symbol.Pattern, symbol.Value1, symbol.Value2, symbol.Tag}
			if err := table.Append(row); err != nil {
				return err
			}
		}
		return table.Render()
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q, expected table, json or yaml", format)
	}

	scheme := dumpScheme{
		Identifier:   sd.Identifier,
		LangCode:     sd.LangCode,
		DisplayName:  sd.DisplayName,
		Author:       sd.Author,
		CompiledDate: sd.CompiledDate,
		IsStable:     sd.IsStable,
		Symbols:      make([]dumpSymbol, len(symbols)),
	}
	for i, symbol := range symbols {
		scheme.Symbols[i] = dumpSymbol{symbol.Type.String(), symbol.Pattern, symbol.Value1, symbol.Value2, symbol.Tag}
	}

	var data []byte
	if format == "json" {
		data, err = json.MarshalIndent(scheme, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(scheme)
	}
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}

func commandLookup(cmd *cobra.Command, vstPath string, categoryName string, pattern string) error {
	category, ok := gouast.ParseCategory(categoryName)
	if !ok {
		return fmt.Errorf("unknown category %q", categoryName)
	}

	file, err := openExisting(vstPath)
	if err != nil {
		return err
	}
	defer file.Close()

	symbol, err := file.GetSymbol(cmd.Context(), category, pattern)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), symbol.Value1)

	return nil
}
