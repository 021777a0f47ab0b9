package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geoset/geoset/internal/api"
	"github.com/geoset/geoset/internal/config"
	"github.com/geoset/geoset/internal/log"
)

const defaultBindAddr = "127.0.0.1:8801"

// ServeCommand runs the HTTP API server.
type ServeCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	bindAddr string
}

func CreateServeCommand() *ServeCommand {
	gc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.bindAddr, "bind", "", "Address to bind the HTTP server (default from config, or "+defaultBindAddr+")")

	return gc
}

func (c *ServeCommand) Name() string {
	return c.fs.Name()
}

func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	// Flag wins over config, config over the default
	if c.bindAddr == "" {
		if cfg.Server != nil && cfg.Server.Listen != "" {
			c.bindAddr = cfg.Server.Listen
		} else {
			c.bindAddr = defaultBindAddr
		}
	}

	return nil
}

func (c *ServeCommand) Run() error {
	log.Infof("Starting geoset API server on %s", c.bindAddr)
	log.Infof("Configuration loaded from: %s", c.ctx.ConfigPath)
	log.Infof("Access is restricted to private subnets, public clients get 403 Forbidden")

	server := api.NewServer(c.ctx.ConfigPath, c.bindAddr)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
