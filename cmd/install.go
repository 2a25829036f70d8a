package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dongdio/OpenBlog/consts"
	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/internal/op"
	"github.com/dongdio/OpenBlog/internal/setting"
	"github.com/dongdio/OpenBlog/internal/theme"
	"github.com/dongdio/OpenBlog/public"
	"github.com/dongdio/OpenBlog/utility/errs"
	"github.com/dongdio/OpenBlog/utility/utils"
)

type installForm struct {
	Username string
	Nickname string
	Email    string
	Password string
	Title    string
	URL      string
}

var form installForm

// InstallCmd creates the owner account and marks the blog installed
var InstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Create the administrator account and mark the blog as installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		Init()
		defer Release()

		admin, err := install(form)
		if err != nil {
			return err
		}
		utils.Log.Infof("blog installed, administrator is %s", admin.Username)
		return nil
	},
}

// install is refused once the install marker is set or an administrator
// exists. The bundled themes are copied before the marker is saved, since
// the server never copies them on an installed blog.
func install(f installForm) (*model.User, error) {
	installed, err := setting.GetBoolE(consts.IsInstalled)
	if err != nil {
		return nil, err
	}
	if installed {
		return nil, errs.AlreadyInstalled
	}
	if admin, err := op.GetAdmin(); err == nil {
		return nil, errs.NewErr(errs.AlreadyInstalled, "administrator %s exists", admin.Username)
	} else if !errs.Is(err, errs.UserNotFound) {
		return nil, err
	}

	names, err := theme.NewProvisioner(public.Themes, public.ThemesRoot, conf.Conf.ThemeDir).Provision()
	if err != nil {
		return nil, errs.NewErr(errs.ThemeInitFailed, "%v", err)
	}
	utils.Log.Infof("installed bundled themes %v to %s", names, conf.Conf.ThemeDir)

	admin := &model.User{
		Username: strings.TrimSpace(f.Username),
		Nickname: strings.TrimSpace(f.Nickname),
		Email:    strings.TrimSpace(f.Email),
		Role:     model.ADMIN,
	}
	if admin.Nickname == "" {
		admin.Nickname = admin.Username
	}
	if err = op.CreateUser(admin, f.Password); err != nil {
		return nil, err
	}
	items := []model.Option{
		{Key: consts.BlogTitle, Value: f.Title, Type: model.TypeString},
		{Key: consts.BlogURL, Value: strings.TrimSpace(f.URL), Type: model.TypeString},
		{Key: consts.IsInstalled, Value: strconv.FormatBool(true), Type: model.TypeBool, Internal: true},
	}
	if err = op.SaveOptions(items); err != nil {
		return nil, errs.Wrap(err, "failed to save install options")
	}
	return admin, nil
}

func init() {
	InstallCmd.Flags().StringVarP(&form.Username, "username", "u", "admin", "administrator username")
	InstallCmd.Flags().StringVar(&form.Nickname, "nickname", "", "administrator nickname, defaults to the username")
	InstallCmd.Flags().StringVar(&form.Email, "email", "", "administrator email")
	InstallCmd.Flags().StringVarP(&form.Password, "password", "p", "", "administrator password")
	InstallCmd.Flags().StringVar(&form.Title, "title", "OpenBlog", "blog title")
	InstallCmd.Flags().StringVar(&form.URL, "url", "", "public url of the blog, detected from the host ip when empty")
	_ = InstallCmd.MarkFlagRequired("password")
	RootCmd.AddCommand(InstallCmd)
}
