package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dongdio/OpenBlog/internal/op"
	"github.com/dongdio/OpenBlog/utility/utils"
)

// UserCmd lists the accounts
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "List blog accounts",
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		defer Release()

		users, err := op.ListUsers()
		if err != nil {
			utils.Log.Errorf("failed to list users: %+v", err)
			return
		}
		for _, u := range users {
			fmt.Printf("%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Nickname, u.Email)
		}
	},
}

func init() {
	RootCmd.AddCommand(UserCmd)
}
