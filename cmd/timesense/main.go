package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrygo/timesense/internal/profile"
	"github.com/hrygo/timesense/internal/version"
	"github.com/hrygo/timesense/nltime"
)

var rootCmd = &cobra.Command{
	Use:          "timesense <expression>",
	Short:        `Resolve informal Chinese time expressions ("明天下午三点", "下下周三") into absolute timestamps.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Try to load .env from the current directory (ignore error if file doesn't exist)
		_ = godotenv.Load()
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		p := &profile.Profile{
			Mode:      viper.GetString("mode"),
			Timezone:  viper.GetString("tz"),
			Reference: viper.GetString("ref"),
			Version:   version.String(),
		}
		if err := p.Validate(); err != nil {
			return err
		}

		level := slog.LevelWarn
		if p.IsDev() && viper.GetBool("debug") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		loc, err := p.Location()
		if err != nil {
			return err
		}
		ref, err := p.ReferenceTime(loc)
		if err != nil {
			return err
		}

		expr := strings.Join(args, " ")
		resolved, ok := nltime.Resolve(expr, ref)
		if !ok {
			fmt.Fprintf(os.Stderr, "unresolved: %q\n", expr)
			os.Exit(1)
		}
		fmt.Printf("%s\n%s\n", nltime.Format(resolved), resolved.Format(time.RFC3339))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.StringFull())
	},
}

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("tz", "Asia/Shanghai")

	rootCmd.PersistentFlags().String("mode", "dev", `mode, can be "prod" or "dev"`)
	rootCmd.PersistentFlags().String("tz", "Asia/Shanghai", "IANA timezone the reference instant is interpreted in")
	rootCmd.PersistentFlags().String("ref", "", `reference instant ("2006-01-02 15:04"), defaults to the current time`)
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging of resolution stages")

	for _, flag := range []string{"mode", "tz", "ref", "debug"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	viper.SetEnvPrefix("timesense")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
