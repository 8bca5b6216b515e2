package internal

import (
	"github.com/goplus/pkgconfig/internal/env"
	"github.com/goplus/pkgconfig/pkgconfig"
	"github.com/goplus/pkgconfig/pkgs/version"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	flagExecutable string
	flagSearchPath []string
	flagPolicy     string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pkgconf",
	Short: "pkgconf queries pkg-config for native library build metadata",
	Long: `pkgconf runs pkg-config and reports versions, compiler and linker flags
and .pc variables of native libraries in a structured form.

PKG_CONFIG and PKG_CONFIG_PATH are honored unless --pkg-config or --path is given.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetOutputLevel(log.Ldebug)
		} else {
			log.SetOutputLevel(log.Linfo)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagExecutable, "pkg-config", "", "pkg-config executable (default $PKG_CONFIG or pkg-config)")
	pf.StringSliceVar(&flagSearchPath, "path", nil, "package search path (default $PKG_CONFIG_PATH)")
	pf.StringVar(&flagPolicy, "policy", "numeric", "version comparison policy: numeric or lenient")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// newClient builds the client from the environment and the global flags.
// Tests replace it.
var newClient = func() (*pkgconfig.Client, error) {
	policy, err := version.ParsePolicy(flagPolicy)
	if err != nil {
		return nil, err
	}
	cfg := env.FromOS()
	if flagExecutable != "" {
		cfg.Executable = flagExecutable
	}
	if len(flagSearchPath) > 0 {
		cfg.SearchPath = flagSearchPath
	}
	opts := []pkgconfig.Option{
		pkgconfig.WithExecutable(cfg.Executable),
		pkgconfig.WithPolicy(policy),
	}
	if len(cfg.SearchPath) > 0 {
		opts = append(opts, pkgconfig.WithSearchPath(cfg.SearchPath...))
	}
	c := pkgconfig.New(opts...)
	log.Debugf("pkgconf: using %s", c.Executable())
	return c, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
