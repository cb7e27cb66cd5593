package main

import (
	"flag"
	"fmt"
	"kronkc/internal/pkg/common"
	"kronkc/internal/pkg/processors"
	kronk "kronkc/pkg"
	"os"
	"path/filepath"
)

func main() {
	homeDir, _ := os.UserHomeDir()
	defaultCacheDir := filepath.Join(homeDir, ".kronk")

	debug := flag.Bool("d", false, "print debug information while compiling")
	out := flag.String("out", "", "output directory for the generated modules (default: build next to the entry file)")
	cacheDir := flag.String("cache", defaultCacheDir, "dependency cache directory")
	upgrade := flag.Bool("upgrade", false, "pull the latest revision of git dependencies")
	showVersion := flag.Bool("version", false, "show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("kronk compiler version: %s\n", processors.Version)
		return
	}

	log := common.NewLogWriter(*debug)
	if flag.NArg() != 1 {
		log.Err(common.NewSystemErrorf("expected one input, run compiler as `kronkc <file.krk | project dir>`"))
	} else {
		kronk.Compile(flag.Arg(0), kronk.Options{OutDir: *out, CacheDir: *cacheDir, Upgrade: *upgrade}, log)
	}

	log.Flush(os.Stdout)
	if log.HasErrors() {
		os.Exit(1)
	}
}
