package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1/process"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/plugins"
)

type Options struct {
	ConfigPath string
	Init       string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	// Add flags for generic options
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
	flagSet.StringVarP(&o.Init, "init", "i", "selfhost", "start service after initialize")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "activation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	plugins.Setup(app.InstallPlugins, opts.Init)
	if err := setupAdminUser(app); err != nil {
		return err
	}
	process.NewProcess(app).Start()
	serve(app)

	return nil
}

// setupAdminUser 空库首次启动时创建管理员账号，并把长期 token 打印到标准输出
func setupAdminUser(app *core.Core) error {
	appid := app.DefaultAppid()
	total, err := app.Store().UserStore().Total(context.Background(), appid)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	token, err := v1.NewAuthLogic(context.Background(), app).InitAdminUser(appid)
	if err != nil {
		return err
	}
	fmt.Println("Admin access token:", token)
	return nil
}

func NewProcessCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "process",
		Short: "process",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunProcess(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func RunProcess(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	plugins.Setup(app.InstallPlugins, opts.Init)
	process.NewProcess(app).Start()
	fmt.Println("Process starting...")
	sigs := make(chan os.Signal, 1)
	// 监听 os.Interrupt (Ctrl+C) 和 syscall.SIGTERM (kill)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	// 阻塞等待信号
	<-sigs
	return nil
}
