package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/iwat/webfile/internal/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	go func() {
		<-quit
		cancel()
		fmt.Println("\n\nProgram terminated by user.")
		os.Exit(0)
	}()

	if err := cmd.RootCmd(cmd.NewAppBuilder()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
