package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/varnamproject/gouast/gouast"
	"github.com/varnamproject/gouast/internal/log"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

func usage() string {
	return "usage: uast [" + strings.Join(gouast.Modes, "|") + "]"
}

func newRoot() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "uast [d|i|g|s]",
		Short: "uast converts Sanskrit text read from stdin, one line at a time.",
		Long: "`uast` reads lines from stdin and writes every whitespace separated word converted by the selected mode.\n\n" +
			"  d  UAST or IAST to Devanāgarī (default)\n" +
			"  i  Devanāgarī to IAST\n" +
			"  g  Devanāgarī to Gujarātī\n" +
			"  s  SLP1 to IAST",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return preRun(cmd, v)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("mode", args[0])
			}

			conv, err := gouast.ConverterForMode(v.GetString("mode"))
			if err != nil {
				return fmt.Errorf("%s: %w", usage(), err)
			}

			log.DebugS("Converting", "mode", v.GetString("mode"))

			return run(cmd.InOrStdin(), cmd.OutOrStdout(), conv)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("uast {{.Version}} (%s [%s])\n", runtime.GOOS, runtime.GOARCH))

	fs := root.PersistentFlags()
	fs.String("config", "", "config file (yaml, json or toml)")
	log.RegisterFlags(fs)

	// glog registers -v, -logtostderr and -log_dir on the go flag set.
	// Log to stderr unless --logtostderr=false is given.
	flag.Set("logtostderr", "true")
	fs.AddGoFlagSet(flag.CommandLine)

	root.Flags().String("mode", gouast.MODE_DEVANAGARI, "conversion mode, one of "+strings.Join(gouast.Modes, ", "))
	v.BindPFlag("mode", root.Flags().Lookup("mode"))
	v.SetDefault("mode", gouast.MODE_DEVANAGARI)

	v.SetEnvPrefix("UAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newVSTCommand(v))

	return root
}

func preRun(cmd *cobra.Command, v *viper.Viper) error {
	if err := log.Init(cmd.Flags()); err != nil {
		return err
	}

	configFile, err := cmd.Flags().GetString("config")
	if err != nil || configFile == "" {
		return nil
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", configFile, err)
	}

	log.DebugS("Loaded config", "path", v.ConfigFileUsed())

	return nil
}

// run converts in line by line until EOF. A last line without a newline is
// converted too.
func run(in io.Reader, out io.Writer, conv gouast.Converter) error {
	reader := bufio.NewReader(in)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}

		if line != "" {
			if _, werr := fmt.Fprintln(out, gouast.ConvertLine(conv, line)); werr != nil {
				return werr
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}
