// Package main provides the CLI entrypoint for drills.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/drills/internal/bank"
	"github.com/verte-zerg/drills/internal/config"
	"github.com/verte-zerg/drills/internal/mathsui"
	"github.com/verte-zerg/drills/internal/model"
	"github.com/verte-zerg/drills/internal/round"
	"github.com/verte-zerg/drills/internal/shell"
	"github.com/verte-zerg/drills/internal/snippetfile"
	"github.com/verte-zerg/drills/internal/stats"
	"github.com/verte-zerg/drills/internal/store"
	"github.com/verte-zerg/drills/internal/typingui"
)

const (
	defaultStartView      = model.ViewMaths
	defaultDifficulty     = string(model.Easy)
	defaultRetryIncorrect = true
	defaultAutoIndent     = true
)

var defaultFeedbackDelayMs = int(round.DefaultFeedbackDelay / time.Millisecond)

var (
	startView string

	mathsDifficulty      string
	mathsCategory        string
	mathsRetryIncorrect  bool
	mathsFeedbackDelayMs int

	typingCategory    string
	typingAutoIndent  bool
	typingSnippetsDir string
)

type appConfig struct {
	StartView string
	Maths     model.MathsConfig
	Typing    model.TypingConfig
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "drills",
		Short:         "TUI maths and code typing drills",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, "")
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&mathsDifficulty, "difficulty", defaultDifficulty, "maths difficulty (easy, medium, hard; empty for any)")
	flags.StringVar(&mathsCategory, "category", "", "maths category filter (addition, subtraction, multiplication, division)")
	flags.BoolVar(&mathsRetryIncorrect, "retry-incorrect", defaultRetryIncorrect, "replay a puzzle after a wrong answer")
	flags.IntVar(&mathsFeedbackDelayMs, "feedback-delay-ms", defaultFeedbackDelayMs, "milliseconds to show feedback before advancing")
	flags.StringVar(&typingCategory, "typing-category", "", "snippet category filter")
	flags.BoolVar(&typingAutoIndent, "auto-indent", defaultAutoIndent, "enter also types the indentation of the next line")
	flags.StringVar(&typingSnippetsDir, "snippets-dir", "", "directory of extra snippet files")
	rootCmd.Flags().StringVar(&startView, "start-view", defaultStartView, "view shown first (maths, typing)")

	rootCmd.AddCommand(newViewCmd(model.ViewMaths, "Start on the maths game"))
	rootCmd.AddCommand(newViewCmd(model.ViewTyping, "Start on the typing tool"))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newResetIntroCmd())

	return rootCmd
}

func newViewCmd(view, short string) *cobra.Command {
	return &cobra.Command{
		Use:   view,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, view)
		},
	}
}

func loadAppConfig(cmd *cobra.Command, forcedView string) (appConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return appConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "start-view", &startView, fileCfg.App.StartView)
	applyConfig(cmd, "difficulty", &mathsDifficulty, fileCfg.Maths.Difficulty)
	applyConfig(cmd, "category", &mathsCategory, fileCfg.Maths.Category)
	applyConfig(cmd, "retry-incorrect", &mathsRetryIncorrect, fileCfg.Maths.RetryIncorrect)
	applyConfig(cmd, "feedback-delay-ms", &mathsFeedbackDelayMs, fileCfg.Maths.FeedbackDelayMs)
	applyConfig(cmd, "typing-category", &typingCategory, fileCfg.Typing.Category)
	applyConfig(cmd, "auto-indent", &typingAutoIndent, fileCfg.Typing.AutoIndent)
	applyConfig(cmd, "snippets-dir", &typingSnippetsDir, fileCfg.Typing.SnippetsDir)

	cfg := appConfig{
		StartView: startView,
		Maths: model.MathsConfig{
			Difficulty:     model.Difficulty(strings.ToLower(strings.TrimSpace(mathsDifficulty))),
			Category:       model.Category(strings.ToLower(strings.TrimSpace(mathsCategory))),
			RetryIncorrect: mathsRetryIncorrect,
			FeedbackDelay:  time.Duration(mathsFeedbackDelayMs) * time.Millisecond,
		},
		Typing: model.TypingConfig{
			Category:    strings.TrimSpace(typingCategory),
			AutoIndent:  typingAutoIndent,
			SnippetsDir: typingSnippetsDir,
		},
	}
	if forcedView != "" {
		cfg.StartView = forcedView
	}
	if cfg.Typing.SnippetsDir == "" {
		cfg.Typing.SnippetsDir = config.DefaultSnippetsDir()
	}
	if err := validateConfig(cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

func runShell(cmd *cobra.Command, forcedView string) error {
	cfg, err := loadAppConfig(cmd, forcedView)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("drills needs an interactive terminal")
	}

	userSnippets, err := snippetfile.LoadDir(cfg.Typing.SnippetsDir)
	if err != nil {
		return fmt.Errorf("failed to load snippets: %w", err)
	}
	snippets := append(append([]model.Snippet(nil), bank.Snippets...), userSnippets...)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	introSeen, err := st.Flag(context.Background(), store.IntroSeenKey)
	if err != nil {
		logErrf("failed to read intro flag: %v\n", err)
	}

	session := stats.NewSession()
	picker := bank.NewPicker()
	factories := map[string]shell.Factory{
		model.ViewMaths: func() (shell.View, error) {
			view, err := mathsui.NewModel(cfg.Maths, bank.Equations, picker, session)
			if err != nil {
				return nil, err
			}
			return view, nil
		},
		model.ViewTyping: func() (shell.View, error) {
			view, err := typingui.NewModel(cfg.Typing, snippets, picker, session)
			if err != nil {
				return nil, err
			}
			return view, nil
		},
	}
	app, err := shell.NewModel(factories, cfg.StartView, introSeen, st)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	_, runErr := program.Run()
	app.Close()
	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), session); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newResetIntroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-intro",
		Short: "Show the welcome screen again on next start",
		Args:  cobra.NoArgs,
		RunE:  runResetIntroCmd,
	}
}

func runResetIntroCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.ClearFlag(cmd.Context(), store.IntroSeenKey); err != nil {
		return fmt.Errorf("failed to clear intro flag: %w", err)
	}
	logErrln("Intro will be shown on next start.")
	return nil
}

// applyConfig copies a config file value into target unless the flag was
// set on the command line.
func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# drills configuration
# Uncomment a value to enable it. CLI flags override config values.

[app]
# start-view = %q           # View shown first: maths or typing

[maths]
# difficulty = %q            # easy, medium or hard
# category = "addition"        # addition, subtraction, multiplication, division (default: any)
# retry-incorrect = %t         # Replay a puzzle after a wrong answer
# feedback-delay-ms = %d     # How long feedback stays on screen

[typing]
# category = "go"              # Snippet category (default: any)
# auto-indent = %t             # Enter also types the next line's indentation
# snippets-dir = %q
`,
		defaultStartView,
		defaultDifficulty,
		defaultRetryIncorrect,
		defaultFeedbackDelayMs,
		defaultAutoIndent,
		config.DefaultSnippetsDir(),
	)
}

func validateConfig(cfg appConfig) error {
	switch cfg.StartView {
	case model.ViewMaths, model.ViewTyping:
	default:
		return fmt.Errorf("--start-view must be %q or %q", model.ViewMaths, model.ViewTyping)
	}
	switch cfg.Maths.Difficulty {
	case "", model.Easy, model.Medium, model.Hard:
	default:
		return fmt.Errorf("--difficulty must be easy, medium or hard")
	}
	switch cfg.Maths.Category {
	case "", model.Addition, model.Subtraction, model.Multiplication, model.Division:
	default:
		return fmt.Errorf("--category must be addition, subtraction, multiplication or division")
	}
	if cfg.Maths.FeedbackDelay < 0 {
		return fmt.Errorf("--feedback-delay-ms must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
