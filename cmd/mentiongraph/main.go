package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mentiongraph/internal/analytics"
	"mentiongraph/internal/cmdlog"
	"mentiongraph/internal/config"
	"mentiongraph/internal/ingest"
	"mentiongraph/internal/jobs"
	"mentiongraph/internal/logging"
	"mentiongraph/internal/metrics"
	"mentiongraph/internal/store/corpus"
	"mentiongraph/internal/theme"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	var err error
	switch cmd {
	case "init":
		err = cmdlog.Run(cmd, cmdInit)
	case "import":
		err = cmdlog.Run(cmd, cmdImport)
	case "graph":
		err = cmdlog.Run(cmd, cmdGraph)
	case "rank":
		err = cmdlog.Run(cmd, cmdRank)
	case "activity":
		err = cmdlog.Run(cmd, cmdActivity)
	default:
		printHelp()
		return
	}
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: mentiongraph <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./mentiongraph.yaml")
	fmt.Println("  import      Load a JSON/YAML post corpus into the SQLite store")
	fmt.Println("  graph       Print the inferred follows graph")
	fmt.Println("  rank        Print users by inferred follower count")
	fmt.Println("  activity    Show hourly post and mention counts")
}

func cmdInit() error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./mentiongraph.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	if err := config.Save(*path, config.Default()); err != nil {
		return err
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
	return nil
}

// loadConfig reads the config if present; a missing default file falls back to Default.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if os.IsNotExist(err) {
		cfg = config.Default()
		cfg.ResolveEnv()
		err = cfg.Validate()
	}
	if err != nil {
		return cfg, err
	}
	logging.SetLevel(cfg.Logging.Level)
	metrics.StartServer(cfg.Metrics.Addr)
	return cfg, nil
}

// source opens the post source: the corpus file when given, else the store.
func source(cfg config.Config, file string) (jobs.PostSource, func(), error) {
	if file == "" {
		file = cfg.Corpus.Path
	}
	if file != "" {
		posts, err := ingest.LoadFile(file)
		if err != nil {
			return nil, nil, err
		}
		return jobs.Posts(posts), func() {}, nil
	}
	db, err := corpus.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}

func cmdImport() error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	cfgPath := fs.String("config", "./mentiongraph.yaml", "config path")
	file := fs.String("file", "", "JSON or YAML corpus to import")
	_ = fs.Parse(os.Args[2:])
	if *file == "" {
		return fmt.Errorf("import: -file is required")
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	posts, err := ingest.LoadFile(*file)
	if err != nil {
		return err
	}
	db, err := corpus.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	ctx := context.Background()
	n, err := db.PutPosts(ctx, posts)
	if err != nil {
		return err
	}
	total, err := db.CountPosts(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d new posts (%d in corpus)\n", n, total)
	return nil
}

func analyze(args []string, name string) (jobs.Result, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cfgPath := fs.String("config", "./mentiongraph.yaml", "config path")
	file := fs.String("file", "", "read posts from this corpus file instead of the store")
	top := fs.Int("top", -1, "number of users to print (0 = all, default from config)")
	_ = fs.Parse(args)
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return jobs.Result{}, err
	}
	if *top >= 0 {
		cfg.Analysis.TopN = *top
	}
	src, closeFn, err := source(cfg, *file)
	if err != nil {
		return jobs.Result{}, err
	}
	defer closeFn()
	return jobs.RunAnalysis(context.Background(), src, cfg.Analysis, time.Now().UTC())
}

func cmdGraph() error {
	res, err := analyze(os.Args[2:], "graph")
	if err != nil {
		return err
	}
	for _, author := range res.Graph.Authors() {
		fmt.Printf("%s -> %s\n", author, strings.Join(res.Graph.Following(author), ", "))
	}
	fmt.Printf("%d posts, %d authors, %d edges\n", res.Posts, len(res.Graph), res.Graph.Edges())
	return nil
}

func cmdRank() error {
	res, err := analyze(os.Args[2:], "rank")
	if err != nil {
		return err
	}
	for _, r := range res.Top {
		fmt.Printf("@%s followers=%d\n", r.Username, r.Followers)
	}
	return nil
}

func cmdActivity() error {
	fs := flag.NewFlagSet("activity", flag.ExitOnError)
	cfgPath := fs.String("config", "./mentiongraph.yaml", "config path")
	file := fs.String("file", "", "read posts from this corpus file instead of the store")
	_ = fs.Parse(os.Args[2:])
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	src, closeFn, err := source(cfg, *file)
	if err != nil {
		return err
	}
	defer closeFn()
	posts, err := src.LoadPosts(context.Background(), time.Time{}, time.Time{})
	if err != nil {
		return err
	}
	b := analytics.HourlyActivity(posts)
	for _, k := range analytics.SortedBucketKeys(b) {
		fmt.Printf("%s posts=%d mentions=%d\n", k.Format("2006-01-02 15:00"), b[k]["posts"], b[k]["mentions"])
	}
	return nil
}
