package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nickdbush/cset"
	"github.com/nickdbush/cset/utils"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("CSET_DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := utils.NewDefaultLogger(level)
	for _, c := range cset.Collectors() {
		_ = prometheus.Register(c)
	}

	repl := NewREPL(log)
	if err := repl.Open(); err != nil {
		log.Error("readline", "err", err)
		os.Exit(1)
	}
	defer repl.Close()

	for {
		err := repl.REPL()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Println(err.Error())
		}
	}
}
