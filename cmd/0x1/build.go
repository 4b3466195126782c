package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Triex/0x1/internal/errors"
)

func buildCmd() *cobra.Command {
	var (
		output string
		target string
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build for production",
		Long: `Build the application for production deployment.

This command:
  • Compiles the app binary with optimizations
  • Copies static assets into the output directory

Examples:
  0x1 build
  0x1 build --output=dist
  0x1 build --target=linux/amd64`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output, target, clean)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from 0x1.json)")
	cmd.Flags().StringVar(&target, "target", "", "Build target (e.g., linux/amd64)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")

	return cmd
}

func runBuild(output, target string, clean bool) error {
	cfg, root, err := loadProject()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.DistDir = output
	}

	distDir := filepath.Join(root, cfg.DistDir)

	fmt.Println("  Building for production...")
	fmt.Println()

	if clean {
		info("Cleaning %s/...", cfg.DistDir)
		if err := os.RemoveAll(distDir); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(distDir, 0755); err != nil {
		return err
	}

	info("Compiling %s...", cfg.Name)
	build := exec.Command("go", "build",
		"-trimpath", "-ldflags", "-s -w",
		"-o", filepath.Join(distDir, cfg.Name),
		"./"+cfg.AppDir,
	)
	build.Dir = root
	build.Env = os.Environ()
	if target != "" {
		parts := strings.SplitN(target, "/", 2)
		if len(parts) != 2 {
			return errors.New("X032", errors.CategoryBuild, "invalid target "+target).
				WithHint("use the form os/arch, e.g. linux/amd64")
		}
		build.Env = append(build.Env, "GOOS="+parts[0], "GOARCH="+parts[1])
	}
	if out, err := build.CombinedOutput(); err != nil {
		return errors.New("X030", errors.CategoryBuild, "build failed").
			WithHint(string(out)).Wrap(err)
	}

	staticDir := filepath.Join(root, cfg.StaticDir)
	if _, err := os.Stat(staticDir); err == nil {
		info("Copying static assets...")
		if err := copyDir(staticDir, filepath.Join(distDir, "static")); err != nil {
			return err
		}
	}

	fmt.Println()
	success("Built %s/", cfg.DistDir)
	return nil
}

// copyDir copies src into dst recursively.
func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dst, rel)
		if fi.IsDir() {
			return os.MkdirAll(out, 0755)
		}
		return copyFile(path, out)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
