package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"fetchrecipes/tui"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the recipe list in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
	cmd.Flags().String("log-file", "", "write logs to this file instead of discarding them")
	_ = v.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))
	return cmd
}

func runTUI(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, logFile, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	a, err := newApp(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctrl := a.newController()
	m := tui.NewModel(ctrl)
	defer m.Close()

	if err := ctrl.Start(cmd.Context()); err != nil {
		return err
	}
	defer ctrl.Close()

	program := tea.NewProgram(m, tea.WithAltScreen())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		if _, ok := <-sigChan; ok {
			program.Quit()
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
