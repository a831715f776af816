package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vaultink/pasteimg/internal/clipboard"
	"github.com/vaultink/pasteimg/internal/config"
	"github.com/vaultink/pasteimg/internal/download"
	"github.com/vaultink/pasteimg/internal/paste"
	"github.com/vaultink/pasteimg/internal/platform"
	"github.com/vaultink/pasteimg/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.vaultink.pasteimg"
	AppName = "PasteImg"

	WindowWidth  = 560
	WindowHeight = 420
)

var vaultDir string

func main() {
	root := &cobra.Command{
		Use:   "pasteimg",
		Short: "pasteimg — embeds clipboard image URLs into a Markdown vault",
		Long: `pasteimg watches the system clipboard. When a direct image URL is copied,
it downloads the image into the vault's attachment folder and replaces the
clipboard content with the local-embed markup ![[path]], so the next paste
inserts the local reference instead of the remote URL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}

	root.PersistentFlags().StringVar(&vaultDir, "vault", "",
		"vault root directory (default: current directory)")

	root.AddCommand(guiCmd(), watchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// guiCmd runs the desktop app (same as the bare root command).
func guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Run the desktop app with the recent-embeds window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}
}

// watchCmd runs the pipeline headless: no window, no confirmation prompts.
func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the clipboard headless (blocks until interrupted)",
		Example: `  pasteimg watch
  pasteimg watch --vault ~/notes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch()
		},
	}
}

func runGUI() error {
	logger := newLogger()

	vaultRoot, err := resolveVaultRoot()
	if err != nil {
		return err
	}

	myApp := app.NewWithID(AppID)
	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	vault := platform.NewVaultFS(vaultRoot)
	downloadSvc := download.NewService(vault, nil, logger)

	watcher := clipboard.NewWatcher(logger)
	editor := clipboard.NewWriteback(watcher)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, settings, downloadSvc, vault)
	notifier := ui.NewFyneNotifier(myApp, rootUI.ShowNotice)
	confirmer := ui.NewFyneConfirmer(myWindow)

	handler := paste.NewHandler(downloadSvc, editor, notifier, confirmer, settings.Snapshot, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Start(ctx, func(p *clipboard.Payload) {
		handler.HandlePaste(ctx, p)
	}); err != nil {
		return err
	}

	logger.Info("watching clipboard", "vault", vaultRoot)

	// Show and run
	myWindow.ShowAndRun()
	return nil
}

func runWatch() error {
	logger := newLogger()

	vaultRoot, err := resolveVaultRoot()
	if err != nil {
		return err
	}

	// The settings blob lives in the host app's preferences store even
	// without a window.
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	vault := platform.NewVaultFS(vaultRoot)
	downloadSvc := download.NewService(vault, nil, logger)

	watcher := clipboard.NewWatcher(logger)
	editor := clipboard.NewWriteback(watcher)

	notifier := &paste.LogNotifier{Log: logger}
	confirmer := paste.AutoConfirmer{Answer: true}

	handler := paste.NewHandler(downloadSvc, editor, notifier, confirmer, settings.Snapshot, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Start(ctx, func(p *clipboard.Payload) {
		handler.HandlePaste(ctx, p)
	}); err != nil {
		return err
	}

	logger.Info("watching clipboard (headless, embeds without prompting)", "vault", vaultRoot)
	fmt.Println("Press Ctrl-C to stop.")

	<-ctx.Done()
	return nil
}

// resolveVaultRoot picks the vault root from the --vault flag or the default.
func resolveVaultRoot() (string, error) {
	if vaultDir != "" {
		abs, err := filepath.Abs(vaultDir)
		if err != nil {
			return "", fmt.Errorf("resolve vault directory: %w", err)
		}
		return abs, nil
	}
	return platform.DefaultVaultDir()
}

func newLogger() *log.Logger {
	logger := log.Default()
	logger.SetTimeFormat("2006-01-02 15:04:05")
	logger.SetReportCaller(true)
	return logger
}
