package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/linkkeeper/internal/cli"

	// Import backends to ensure their init() functions are called for registration
	_ "github.com/arthur-debert/linkkeeper/pkg/backends/git"
	_ "github.com/arthur-debert/linkkeeper/pkg/backends/github"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := cli.DefaultEnv()
	rootCmd := cli.NewRootCmd(env)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, env.Mode.Markup("[error]Error:[/error] "+err.Error()))
		stop()
		os.Exit(1)
	}
}
