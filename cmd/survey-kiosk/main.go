package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"survey-app/internal/kiosk"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "survey service base URL")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	err := kiosk.Run(context.Background(), os.Stdin, os.Stdout, kiosk.Config{
		ServerURL:   *server,
		HTTPTimeout: *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
