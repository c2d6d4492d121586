package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	hashtable "github.com/gadilabi/hash-table"
)

func main() {
	var (
		capacity   = flag.Int("capacity", 50, "Initial number of slots")
		loadFactor = flag.Float64("load-factor", hashtable.DefaultLoadFactor, "Occupancy ratio that triggers a resize")
		growth     = flag.Int("growth", hashtable.DefaultGrowthFactor, "Capacity multiplier per resize")
		hashName   = flag.String("hash", "rolling", "Hash function: rolling or xxhash")
		debug      = flag.Bool("debug", false, "Log resizes to stderr")
	)
	flag.Parse()

	if err := run(*capacity, *loadFactor, *growth, *hashName, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(capacity int, loadFactor float64, growth int, hashName string, debug bool) error {
	hasher, err := hasherByName(hashName)
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if debug {
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer log.Sync()
	}

	sh, err := newShell(capacity,
		hashtable.WithLoadFactor(loadFactor),
		hashtable.WithGrowthFactor(growth),
		hashtable.WithHasher(hasher),
		hashtable.WithLogger(log))
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	defer sh.close()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return sh.runScript(os.Stdin, os.Stdout)
	}

	if _, err := tea.NewProgram(newInteractiveModel(sh)).Run(); err != nil {
		return fmt.Errorf("interactive: %w", err)
	}
	return nil
}

func hasherByName(name string) (hashtable.Hasher, error) {
	switch name {
	case "rolling":
		return hashtable.RollingHash, nil
	case "xxhash":
		return hashtable.XXHash, nil
	}
	return nil, fmt.Errorf("unknown hash %q (want rolling or xxhash)", name)
}
