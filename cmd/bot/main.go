package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"EconScout/internal/cache"
	"EconScout/internal/chart"
	"EconScout/internal/collector"
	"EconScout/internal/config"
	"EconScout/internal/lexicon"
	"EconScout/internal/model"
	"EconScout/internal/notifier"
	"EconScout/internal/orchestrator"
	"EconScout/internal/parser"
	"EconScout/internal/resolver"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] EconScout starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init cache store
	var store cache.Store
	ss, err := cache.NewSQLiteStore(cfg.Cache.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite cache failed, using noop: %v", err)
		store = cache.NewNoopStore()
	} else {
		store = ss
		defer ss.Close()
	}

	// Init fetcher
	fred := collector.NewFredFetcher(cfg.Fred.BaseURL, cfg.Fred.APIKey, cfg.Proxy)
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	fetcher := collector.NewCachedFetcher(fred, store, ttl)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init query pipeline
	p := parser.New(lexicon.Default())
	res := resolver.New(fetcher)
	orch := orchestrator.New(p, res, fetcher, chart.NewNoopRenderer())

	// One-shot mode: answer a single query from the command line and exit
	if len(os.Args) > 1 {
		resp := orch.HandleQuery(strings.Join(os.Args[1:], " "))
		fmt.Println(answerText(resp))
		return
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init cache janitor
	jan := cache.NewJanitor(store)
	if err := jan.Register(cfg.Cache.PruneCron); err != nil {
		log.Fatalf("[FATAL] register cache prune task: %v", err)
	}
	jan.Start()
	defer jan.Stop()

	// Start Telegram polling
	if cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == "" {
		log.Fatalf("[FATAL] telegram.bot_token and telegram.chat_id are required in bot mode")
	}
	bot := notifier.NewTelegramBot(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	go bot.StartPolling(ctx, func(question string) string {
		resp := orch.HandleQuery(question)
		return answerText(resp)
	})
	log.Println("[INFO] Telegram polling started")

	log.Println("[INFO] EconScout is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] EconScout stopped")
}

func answerText(resp *model.Response) string {
	if resp.Summary != "" {
		return resp.Summary
	}
	if resp.ErrorMessage != "" {
		return resp.ErrorMessage
	}
	return "Sorry, I could not produce an answer for that query."
}
