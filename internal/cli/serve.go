package cli

import (
	protocol "shopbot/protocal"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "serve-api",
		Short: "Run the e-commerce HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return protocol.ServeShopHTTP()
		},
	})

	RootCmd.AddCommand(&cobra.Command{
		Use:   "serve-chatbot",
		Short: "Run the chatbot gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return protocol.ServeChatbotHTTP()
		},
	})
}
