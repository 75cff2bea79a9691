package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/tagwm/internal/application/usecase"
	"github.com/bnema/tagwm/internal/cli/styles"
	"github.com/bnema/tagwm/internal/infrastructure/config"
)

var (
	configYes     bool
	configForce   bool
	configSection string
	configJSON    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Create, inspect, document and migrate the tagwm config file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default",
	Long: `Write config.toml with all default settings, and config.schema.json next
to it for editor completion.

An existing config file is only replaced with --force.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationSkipApp: "true"},
	RunE:        runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after applying defaults and TAGWM_* environment overrides.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every config key with its type, default and description",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the config file path and check if any new settings are available.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the config file in line with the current defaults",
	Long: `Compares your config file with the current defaults, then:
  - adds missing settings with their default value
  - carries values of renamed settings over to their new key
  - drops settings that no longer exist

Values you set for existing keys are never modified.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configMigrateCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configKeysCmd.Flags().StringVarP(&configSection, "section", "s", "", "only list keys of this section")
	configKeysCmd.Flags().BoolVar(&configJSON, "json", false, "print keys as JSON")
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Println(a.Manager.GetConfigFile())
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	theme := styles.NewTheme()
	renderer := styles.NewConfigRenderer(theme)

	path := configFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	schemaPath, err := config.WriteSchemaFile(filepath.Dir(path))
	if err != nil {
		return err
	}

	fmt.Print(renderer.RenderCreated(path))
	fmt.Print(renderer.RenderCreated(schemaPath))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if a.ConfigErr != nil {
		fmt.Fprintln(os.Stderr, styles.NewConfigRenderer(a.Theme).RenderError(a.ConfigErr))
	}

	data, err := config.EncodeConfig(a.Config)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(a.Theme)
	if configJSON {
		text, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}

func newMigrateUseCase(path string) *usecase.MigrateConfigUseCase {
	return usecase.NewMigrateConfigUseCase(config.NewMigrator(path), config.NewDiffFormatter())
}

// configFileExists prints the no-file message when path is missing.
func configFileExists(renderer *styles.ConfigRenderer, path string) bool {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Println(renderer.RenderNoConfigFile(path))
		return false
	}
	return true
}

// runConfigStatus shows config file path and migration status.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	path := a.Manager.GetConfigFile()
	if !configFileExists(renderer, path) {
		return nil
	}
	if a.ConfigErr != nil {
		fmt.Println(renderer.RenderError(a.ConfigErr))
	}

	uc := newMigrateUseCase(path)
	ctx := a.Ctx()
	check, err := uc.Check(ctx, usecase.CheckConfigMigrationInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	changes, err := uc.DetectChanges(ctx, usecase.DetectChangesInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if !changes.HasChanges {
		fmt.Println(renderer.RenderUpToDate(path))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(path, len(check.MissingKeys)))
	fmt.Println(renderer.RenderDiff(changes.DiffText))
	fmt.Println(renderer.RenderMigrateHint())
	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	path := a.Manager.GetConfigFile()
	if !configFileExists(renderer, path) {
		return nil
	}

	uc := newMigrateUseCase(path)
	ctx := a.Ctx()
	check, err := uc.Check(ctx, usecase.CheckConfigMigrationInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	changes, err := uc.DetectChanges(ctx, usecase.DetectChangesInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if !changes.HasChanges {
		fmt.Println(renderer.RenderUpToDate(path))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(path, len(check.MissingKeys)))
	fmt.Println(renderer.RenderMissingKeys(check.MissingKeys))
	fmt.Println(renderer.RenderDiff(changes.DiffText))

	if configYes {
		return executeMigration(ctx, uc, renderer)
	}
	return runMigrateWithConfirmation(ctx, uc, renderer, a.Theme)
}

// executeMigration performs the actual migration.
func executeMigration(ctx context.Context, uc *usecase.MigrateConfigUseCase, renderer *styles.ConfigRenderer) error {
	result, err := uc.Execute(ctx, usecase.MigrateConfigInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if len(result.AppliedChanges) > 0 {
		fmt.Println(renderer.RenderMigrationSuccess(len(result.AppliedChanges), result.ConfigFile))
	}
	return nil
}

// migrateState represents the current state of the migrate confirmation.
type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel is the bubbletea model for the migrate confirmation.
type migrateModel struct {
	ctx      context.Context
	spinner  spinner.Model
	renderer *styles.ConfigRenderer
	confirm  styles.Confirm
	state    migrateState
	uc       *usecase.MigrateConfigUseCase

	result   string
	err      error
	quitting bool
}

// migrateResultMsg is sent when the migration completes.
type migrateResultMsg struct {
	output *usecase.MigrateConfigOutput
	err    error
}

func newMigrateModel(
	ctx context.Context,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	uc *usecase.MigrateConfigUseCase,
) migrateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return migrateModel{
		ctx:      ctx,
		spinner:  s,
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, "Apply these changes to the config file?"),
		state:    migrateStateConfirm,
		uc:       uc,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if len(msg.output.AppliedChanges) > 0 {
			m.result = m.renderer.RenderMigrationSuccess(len(msg.output.AppliedChanges), msg.output.ConfigFile)
		} else {
			m.result = m.renderer.RenderUpToDate(msg.output.ConfigFile)
		}
		return m, tea.Quit
	}

	if m.state != migrateStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if m.confirm.Result() {
		m.state = migrateStateRunning
		return m, m.runMigration()
	}
	m.quitting = true
	return m, tea.Quit
}

func (m migrateModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err)
	case m.state == migrateStateDone:
		return m.result
	case m.state == migrateStateRunning:
		return fmt.Sprintf("\n  %s Migrating config...\n", m.spinner.View())
	}
	return m.confirm.View()
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		result, err := m.uc.Execute(m.ctx, usecase.MigrateConfigInput{})
		return migrateResultMsg{output: result, err: err}
	}
}

// runMigrateWithConfirmation runs the migrate with an interactive confirmation dialog.
func runMigrateWithConfirmation(
	ctx context.Context,
	uc *usecase.MigrateConfigUseCase,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
) error {
	m := newMigrateModel(ctx, renderer, theme, uc)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
