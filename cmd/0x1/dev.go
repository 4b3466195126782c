package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Triex/0x1/internal/config"
	"github.com/Triex/0x1/internal/dev"
	"github.com/Triex/0x1/internal/errors"
)

func devCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server with hot reload.

The server watches the project for changes, rebuilds the application,
and pushes reloads to connected browsers. CSS changes are swapped in
place without a full reload; build errors appear as an overlay.

Examples:
  0x1 dev
  0x1 dev --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(host, port)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to bind (default from 0x1.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to bind (default from 0x1.json)")

	return cmd
}

func runDev(host string, port int) error {
	cfg, root, err := loadProject()
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Host = host
	}
	if port != 0 {
		cfg.Port = port
	}

	printBanner()
	info("Starting dev server for %s...", cfg.Name)
	fmt.Println()

	app := newAppProcess(cfg, root)
	defer app.stop()

	if err := app.rebuild(); err != nil {
		warn("Initial build failed: %v", err)
	}

	server := dev.NewServer(dev.ServerConfig{
		Project: cfg,
		Root:    root,
		App:     app.proxy(),
		Rebuild: app.rebuild,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return server.Run(ctx)
}

// appProcess builds and runs the project binary on an internal port and
// proxies requests to it.
type appProcess struct {
	cfg  *config.Config
	root string
	bin  string
	port int

	mu  sync.Mutex
	cmd *exec.Cmd
}

func newAppProcess(cfg *config.Config, root string) *appProcess {
	return &appProcess{
		cfg:  cfg,
		root: root,
		bin:  filepath.Join(root, ".0x1", "app"),
		port: cfg.Port + 1,
	}
}

// rebuild compiles the app and restarts the child process.
func (a *appProcess) rebuild() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(a.bin), 0755); err != nil {
		return err
	}

	build := exec.Command("go", "build", "-o", a.bin, "./"+a.cfg.AppDir)
	build.Dir = a.root
	if out, err := build.CombinedOutput(); err != nil {
		return errors.New("X030", errors.CategoryBuild, "build failed").
			WithHint(string(out)).Wrap(err)
	}

	a.stopLocked()

	cmd := exec.Command(a.bin)
	cmd.Dir = a.root
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("HOST=%s", a.cfg.Host),
		fmt.Sprintf("PORT=%d", a.port),
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return errors.New("X031", errors.CategoryRuntime, "could not start app").Wrap(err)
	}
	a.cmd = cmd

	// Give the child a moment to bind before the proxy sends traffic.
	time.Sleep(200 * time.Millisecond)
	return nil
}

func (a *appProcess) stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *appProcess) stopLocked() {
	if a.cmd != nil && a.cmd.Process != nil {
		a.cmd.Process.Kill()
		a.cmd.Wait()
		a.cmd = nil
	}
}

// proxy forwards requests to the child process.
func (a *appProcess) proxy() http.Handler {
	target := &url.URL{
		Scheme: "http",
		Host:   fmt.Sprintf("%s:%d", a.cfg.Host, a.port),
	}
	return httputil.NewSingleHostReverseProxy(target)
}
