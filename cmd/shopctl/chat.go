package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"shop-assistant/internal/conversation/delivery/tui"
)

var flagChatSession string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open an interactive chat session in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&flagChatSession, "session", "", "Session id (default: random)")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if _, err := a.Bootstrap(ctx); err != nil {
		return err
	}

	session := flagChatSession
	if session == "" {
		session = uuid.NewString()
	}

	p := tea.NewProgram(tui.New(ctx, a.Conversation, session), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
