package commands

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"farm-market/chatpoll"
	"farm-market/config"
	"farm-market/models"
	"farm-market/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "List conversations and chat with the other side of the market",
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		conversations, err := c.Conversations(context.Background())
		if err != nil {
			return describeAPIError(err)
		}

		if len(conversations) == 0 {
			fmt.Println("No conversations yet.")
			return nil
		}
		for _, conv := range conversations {
			fmt.Printf("#%d  farmer %d <> buyer %d\n", conv.ID, conv.FarmerID, conv.BuyerID)
		}
		return nil
	},
}

var chatStartCmd = &cobra.Command{
	Use:   "start <farmer-id>",
	Short: "Start (or resume) a conversation with a farmer (buyer)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		farmerID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid farmer id %q", args[0])
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		me, err := c.CurrentUser(context.Background())
		if err != nil {
			return describeAPIError(err)
		}

		conversationID, err := c.StartConversation(context.Background(), farmerID, me.ID)
		if err != nil {
			return describeAPIError(err)
		}
		return openChat(conversationID)
	},
}

var chatOpenCmd = &cobra.Command{
	Use:   "open <conversation-id>",
	Short: "Open a conversation view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conversationID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid conversation id %q", args[0])
		}
		return openChat(conversationID)
	},
}

// openChat runs the interactive conversation view. The poller keeps the
// message list current while the view is open and is cancelled on exit.
func openChat(conversationID int) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	me, err := c.CurrentUser(context.Background())
	if err != nil {
		return describeAPIError(err)
	}

	var program *tea.Program
	poller := chatpoll.New(c, conversationID, config.AppConfig.ChatPollInterval, func(msgs []models.Message) {
		program.Send(tui.MessagesMsg(msgs))
	})

	model := tui.NewChatModel(conversationID, me.ID, poller)
	program = tea.NewProgram(model, tea.WithAltScreen())

	stop := poller.Start()
	defer stop()

	_, err = program.Run()
	return err
}

func init() {
	chatCmd.AddCommand(chatListCmd)
	chatCmd.AddCommand(chatStartCmd)
	chatCmd.AddCommand(chatOpenCmd)
	rootCmd.AddCommand(chatCmd)
}
