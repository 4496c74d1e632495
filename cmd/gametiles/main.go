// gametiles is a CLI for the Classic Computing game library: it scans
// a directory tree for game entries, persists the catalog, and checks
// thumbnail health.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/classic-computing/gametiles/config"
	"github.com/classic-computing/gametiles/library"
	"github.com/classic-computing/gametiles/logger"
	"github.com/classic-computing/gametiles/storage"
	"github.com/classic-computing/gametiles/thumbnail"
)

const appDirName = "classic-computing"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if *flagDebug {
		level = "debug"
	}
	logger.Init(level, cfg.Logging.LogFile)
	defer logger.Sync()

	storage.Init(appDirName)

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "scan":
		cmdScan(cfg, args[1:])
	case "list", "ls":
		cmdList()
	case "check":
		cmdCheck(cfg)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gametiles - Classic Computing game library tool

Usage:
  gametiles [flags] <command>

Commands:
  scan [root]   Scan a directory for games and persist the catalog
                (root defaults to library.scan_root from the config)
  list          Print the persisted catalog
  check         Decode every catalog thumbnail and report failures

Flags:
  -config path  Path to config file
  -debug        Enable debug logging`)
}

func cmdScan(cfg *config.Config, args []string) {
	root := cfg.Library.ScanRoot
	if len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		fmt.Fprintln(os.Stderr, "Usage: gametiles scan <root> (or set library.scan_root)")
		os.Exit(1)
	}

	catalog, err := library.ScanAndPersist(root, cfg.Library.Extensions)
	if err != nil {
		if catalog == nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// Scan succeeded but the save failed; the results are still
		// worth reporting.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	withThumbs := 0
	for _, g := range catalog.Games {
		if g.Thumbnail != "" {
			withThumbs++
		}
	}

	fmt.Printf("Scanned: %s\n", root)
	fmt.Printf("Games:   %d (%d with thumbnails)\n", catalog.Len(), withThumbs)
}

func cmdList() {
	catalog := storage.LoadCatalogOrPlaceholder()

	for _, g := range catalog.Games {
		marker := " "
		if g.Thumbnail != "" {
			marker = "*"
		}
		fmt.Printf("%s %-30s %s\n", marker, g.Name, g.Path)
	}
	fmt.Printf("\n%d games (* = has thumbnail)\n", catalog.Len())
}

func cmdCheck(cfg *config.Config) {
	catalog, err := storage.LoadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cache := thumbnail.New(cfg.Thumbnails.TileWidth, cfg.Thumbnails.TileHeight)

	var paths []string
	for _, g := range catalog.Games {
		if g.Thumbnail != "" {
			paths = append(paths, g.Thumbnail)
		}
	}

	if err := cache.Warm(context.Background(), paths); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, p := range paths {
		if cache.Get(p) == nil {
			failed++
			fmt.Printf("bad  %s\n", p)
		}
	}

	fmt.Printf("%d thumbnails checked, %d ok, %d failed, %d games without thumbnails\n",
		len(paths), len(paths)-failed, failed, catalog.Len()-len(paths))
}
