package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tesso57/ainews/internal/application/usecase"
	"github.com/tesso57/ainews/internal/infrastructure/config"
	"github.com/tesso57/ainews/internal/infrastructure/fetch"
	"github.com/tesso57/ainews/internal/infrastructure/history"
	"github.com/tesso57/ainews/internal/logger"
	"github.com/tesso57/ainews/internal/presentation/cli"
	"github.com/tesso57/ainews/internal/presentation/render"
	"github.com/tesso57/ainews/internal/schedule"
)

func main() {
	logger.Init(os.Getenv("AI_NEWS_LOG"))
	defer logger.Sync()

	args := os.Args[1:]
	cmd := "digest"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "digest":
		err = runDigest(args)
	case "sources":
		err = runSources()
	case "doctor":
		err = runDoctor()
	case "schedule":
		err = runSchedule(args)
	case "help":
		printHelp()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("error:")+" "+err.Error())
		os.Exit(1)
	}
}

func runDigest(args []string) error {
	store, err := config.Load()
	if err != nil {
		return err
	}

	a := cli.ParseArgs(args, store.SourceKeys(), store.Settings.Lang, store.Settings.Days)
	if a.Help {
		printHelp()
		return nil
	}
	days := a.Days
	if days <= 0 {
		days = 1
	}

	var seen usecase.SeenStore
	if a.Dedupe {
		st, err := history.Open(store.SeenDBPath())
		if err != nil {
			// An unavailable store downgrades the run to a plain digest.
			logger.L.Warnw("seen store unavailable", "path", store.SeenDBPath(), "error", err)
		} else {
			defer func() { _ = st.Close() }()
			seen = st
		}
	}

	client := fetch.NewClient(store.Settings.GitHubToken, logger.L)
	svc := usecase.NewDigestService(client, seen, time.Now)
	results := svc.Build(context.Background(), store.SelectSources(a.Sources), days)

	opt := render.Options{Days: days, Lang: a.Lang, Now: time.Now()}
	var content string
	if a.Format == "json" {
		content, err = render.JSON(results, opt)
		if err != nil {
			return err
		}
	} else {
		content = render.Markdown(results, opt)
	}

	if a.Output == "file" {
		path, err := cli.WriteDigest(store.Settings.OutputDir, a.Format, content, opt.Now)
		if err != nil {
			return err
		}
		fmt.Println(cli.SuccessStyle.Render("✓") + " digest written to " + cli.DimStyle.Render(path))
		return nil
	}
	fmt.Print(content)
	return nil
}

func runSources() error {
	store, err := config.Load()
	if err != nil {
		return err
	}
	fmt.Println(cli.TitleStyle.Render("Configured sources"))
	for _, src := range store.Settings.Sources {
		fmt.Printf("%s %s\n", cli.SuccessStyle.Render("•"), src.Name)
		fmt.Printf("  %s\n", cli.DimStyle.Render(fmt.Sprintf("key=%s feeds=%d repos=%d trending=%d",
			src.Key, len(src.Feeds), len(src.Repos), len(src.Trending))))
	}
	return nil
}

func runDoctor() error {
	store, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()
	failed := 0
	for _, src := range store.Settings.Sources {
		for _, f := range src.Feeds {
			title, err := fetch.ValidateFeed(ctx, f.URL)
			if err != nil {
				failed++
				fmt.Printf("%s %s %s\n", cli.ErrorStyle.Render("FAIL"), f.URL, cli.DimStyle.Render(err.Error()))
				continue
			}
			fmt.Printf("%s %s %s\n", cli.SuccessStyle.Render("OK"), f.URL, cli.DimStyle.Render(title))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d feed(s) failed validation", failed)
	}
	return nil
}

func runSchedule(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ainews schedule cron|launchd|windows|actions [--hour=N]")
	}
	kind := args[0]
	opt := schedule.Options{Hour: 8}
	for _, arg := range args[1:] {
		if strings.HasPrefix(arg, "--hour=") {
			if n, err := strconv.Atoi(strings.TrimPrefix(arg, "--hour=")); err == nil {
				opt.Hour = n
			}
		}
	}
	out, err := schedule.Render(kind, opt)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func printHelp() {
	fmt.Println(cli.TitleStyle.Render("ainews") + " - AI news digest")
	fmt.Print(`
Usage:
  ainews [digest] [flags]     fetch sources and print or write a digest
  ainews sources              list configured sources
  ainews doctor               strictly validate every configured feed URL
  ainews schedule <kind>      print a scheduling snippet (cron|launchd|windows|actions)

Flags (digest):
  --format=markdown|json      output format (default markdown)
  --output=console|file       where to write (default console)
  --days=N                    lookback window in days (default 1)
  --sources=a,b,c             source keys to fetch (default: all configured)
  --lang=en|zh-TW|zh-CN|ja    digest language (default: en or $AI_NEWS_LANG)
  --dedupe                    skip items reported by earlier runs
  --help, -h                  show this help

Environment:
  GITHUB_TOKEN                GitHub API token for higher rate limits
  AI_NEWS_OUTPUT_DIR          digest directory (default ~/.claude/news)
  AI_NEWS_LANG                default digest language
  AI_NEWS_LOG                 log level (debug|info|warn|error)
`)
}
