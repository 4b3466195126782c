package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/Triex/0x1/internal/config"
	"github.com/Triex/0x1/internal/errors"
	"github.com/Triex/0x1/internal/templates"
)

func newCmd() *cobra.Command {
	var (
		template    string
		description string
		tailwind    bool
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new project",
		Long: `Create a new 0x1 project with the specified name.

Templates:
  minimal   One page and a stylesheet
  full      Pages, a stateful component, and a shared store (default)

Examples:
  0x1 new my-app
  0x1 new my-app --template=minimal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args[0], template, description, tailwind)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "full", "Project template (minimal, full)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().BoolVar(&tailwind, "tailwind", false, "Include Tailwind CSS")

	return cmd
}

var projectNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

func runNew(name, templateName, description string, tailwind bool) error {
	printBanner()
	fmt.Println("  Creating a new 0x1 project...")
	fmt.Println()

	if !projectNameRe.MatchString(name) {
		return errors.New("X020", errors.CategoryCLI, "invalid project name "+name).
			WithHint("use lowercase letters, numbers, and hyphens")
	}

	projectDir, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(projectDir); !os.IsNotExist(err) {
		return errors.New("X021", errors.CategoryCLI, "directory "+name+" already exists").
			WithHint("choose a different name or remove the existing directory")
	}

	if description == "" {
		description = "A 0x1 web application"
	}

	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	info("Creating project directory...")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return err
	}

	info("Writing '%s' template...", templateName)
	err = tmpl.Write(projectDir, templates.Data{
		ProjectName: name,
		ModulePath:  name,
		Description: description,
		Tailwind:    tailwind,
	})
	if err != nil {
		os.RemoveAll(projectDir)
		return err
	}

	fmt.Println()
	success("Created %s/", name)
	fmt.Println()
	info("Next steps:")
	info("  cd %s", name)
	info("  0x1 dev")
	fmt.Println()
	return nil
}

// loadProject loads 0x1.json from the working directory.
func loadProject() (*config.Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, "", err
	}
	return cfg, dir, nil
}
