package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"cashcart/internal/catalog"
	"cashcart/internal/config"
	"cashcart/internal/images"
)

func main() {
	var serve bool
	var addr string
	var productsFile string
	var storesFile string
	var imageURL string
	var imageContext string
	var network string
	var dpr float64
	var help bool

	flag.BoolVar(&serve, "serve", false, "Run HTTP server mode")
	flag.StringVar(&addr, "addr", "", "Address to bind in server mode (overrides CASHCART_ADDR)")
	flag.StringVar(&productsFile, "products", "", "Normalize a product payload file and print the result")
	flag.StringVar(&storesFile, "stores", "", "Normalize a store payload file and print the result")
	flag.StringVar(&imageURL, "image", "", "Rewrite an image URL for delivery and print it")
	flag.StringVar(&imageContext, "context", string(images.ContextCard), "Image context for -image")
	flag.StringVar(&network, "network", string(images.NetworkWifi), "Network class for -image")
	flag.Float64Var(&dpr, "dpr", 1, "Device pixel ratio for -image")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if serve {
		if addr == "" {
			addr = cfg.Server.Addr
		}
		if err := runServer(cfg, addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	switch {
	case productsFile != "":
		if err := normalizeFile(productsFile, func(data []byte) any { return catalog.NormalizeProducts(data) }); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case storesFile != "":
		if err := normalizeFile(storesFile, func(data []byte) any { return catalog.NormalizeStores(data) }); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case imageURL != "":
		if err := rewriteImage(imageURL, imageContext, network, dpr); err != nil {
			log.Fatalf("Error: %v", err)
		}
	default:
		fmt.Println("Error: nothing to do (use -serve, -products, -stores, or -image)")
		showHelp()
		os.Exit(1)
	}
}

func normalizeFile(path string, normalize func([]byte) any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read payload file: %w", err)
	}
	items := normalize(data)
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode normalized records: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func rewriteImage(rawURL, context, network string, dpr float64) error {
	ctx, ok := images.ParseContext(context)
	if !ok {
		return fmt.Errorf("unknown image context %q", context)
	}
	net, ok := images.ParseNetwork(network)
	if !ok {
		return fmt.Errorf("unknown network type %q", network)
	}
	optimized, err := images.OptimizedURL(rawURL, images.Options{Context: ctx, Network: net, DPR: dpr})
	if err != nil {
		return err
	}
	fmt.Println(optimized)
	return nil
}

func showHelp() {
	fmt.Println(`cashcart - payload normalization and image delivery core

Usage:
  cashcart -serve [-addr :8080]        run the HTTP API
  cashcart -products payload.json      normalize a raw product payload
  cashcart -stores payload.json        normalize a raw store payload
  cashcart -image URL [-context card] [-network wifi] [-dpr 2]
                                       rewrite an image URL for delivery

Environment:
  CASHCART_ADDR                 listen address for -serve (default :8080)
  LOG_LEVEL                     debug, info, warn, error
  OTEL_EXPORTER_OTLP_ENDPOINT   enable OTLP log export`)
}
