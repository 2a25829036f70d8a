package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dongdio/OpenBlog/internal/conf"
)

// VersionCmd prints build information
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show current version of OpenBlog",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func printVersion(w io.Writer) {
	rows := [][2]string{
		{"Version", conf.Version},
		{"Built At", conf.BuiltAt},
		{"Go Version", fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)},
		{"Commit ID", conf.GitCommit},
		{"Author", conf.GitAuthor},
	}
	_, _ = fmt.Fprintln(w, "OpenBlog")
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "  %-12s%s\n", r[0]+":", r[1])
	}
}

func init() {
	RootCmd.AddCommand(VersionCmd)
}
