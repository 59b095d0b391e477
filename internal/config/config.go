package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.SetEnvPrefix("PR_AGENT")
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		// Flags use dashes, keys use underscores.
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyTemplatesDir, "templates")
	viper.SetDefault(KeyBaseBranch, "main")
	viper.SetDefault(KeyMaxDiffLines, 500)
	viper.SetDefault(KeyGitTimeout, "30s")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
}

func TemplatesDir() string { return viper.GetString(KeyTemplatesDir) }
func BaseBranch() string   { return viper.GetString(KeyBaseBranch) }
func MaxDiffLines() int    { return viper.GetInt(KeyMaxDiffLines) }
func LogLevel() string     { return viper.GetString(KeyLogLevel) }
func Transport() string    { return viper.GetString(KeyTransport) }
func Host() string         { return viper.GetString(KeyHost) }
func Port() int            { return viper.GetInt(KeyPort) }

// GitTimeout bounds every git subprocess invocation. A malformed value is
// treated as the default rather than an error.
func GitTimeout() time.Duration {
	d, err := time.ParseDuration(viper.GetString(KeyGitTimeout))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// WorkspaceRoots returns the statically configured candidate working
// directories, if any. Empty means the caller session provides none and the
// process working directory is used instead.
func WorkspaceRoots() []string {
	raw := viper.GetString(KeyWorkspaceRoots)
	if raw == "" {
		return nil
	}
	var roots []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roots = append(roots, r)
		}
	}
	return roots
}
