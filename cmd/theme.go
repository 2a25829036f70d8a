package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dongdio/OpenBlog/consts"
	"github.com/dongdio/OpenBlog/internal/op"
	"github.com/dongdio/OpenBlog/internal/setting"
	"github.com/dongdio/OpenBlog/utility/utils"
)

// ThemeCmd lists the installed themes
var ThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List installed themes",
	Run: func(cmd *cobra.Command, args []string) {
		app := Init()
		defer Release()

		themes, err := app.Registry.ListThemes()
		if err != nil {
			utils.Log.Errorf("failed to list themes: %+v", err)
			return
		}
		if len(themes) == 0 {
			fmt.Printf("no theme installed in %s\n", app.Registry.ThemeBasePath())
			return
		}
		active := setting.GetStr(consts.Theme, consts.DefaultTheme)
		fmt.Printf("themes in %s\n", app.Registry.ThemeBasePath())
		for _, t := range themes {
			mark := " "
			if t.ID == active {
				mark = "*"
			}
			fmt.Printf("%s %s\t%s\t%s\n", mark, t.ID, t.Version, t.Path)
		}
	},
}

// UseThemeCmd switches the active theme
var UseThemeCmd = &cobra.Command{
	Use:   "use THEME_ID",
	Short: "Activate an installed theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := Init()
		defer Release()

		t, err := app.Registry.GetTheme(args[0])
		if err != nil {
			return err
		}
		if err = setActiveTheme(t.ID); err != nil {
			return err
		}
		utils.Log.Infof("activated theme %s, restart the server to apply", t.ID)
		return nil
	},
}

func setActiveTheme(id string) error {
	return op.SetOptionValue(consts.Theme, id)
}

func init() {
	ThemeCmd.AddCommand(UseThemeCmd)
	RootCmd.AddCommand(ThemeCmd)
}
