package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/linkkeeper/internal/cli"
	"github.com/arthur-debert/linkkeeper/internal/version"

	_ "github.com/arthur-debert/linkkeeper/pkg/backends/git"
	_ "github.com/arthur-debert/linkkeeper/pkg/backends/github"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.DefaultEnv())

	header := &doc.GenManHeader{
		Title:   "LINKKEEPER",
		Section: "1",
		Source:  "linkkeeper " + version.Version,
		Manual:  "linkkeeper manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
