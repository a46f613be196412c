package plugins

import (
	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
)

// Setup 根据运行模式安装对应的插件实现
func Setup(install func(p core.Plugins), mode string) {
	p := provider[mode]
	if p == nil {
		panic("Setup mode not found: " + mode)
	}
	install(p())
}

var provider = make(map[string]core.SetupFunc)

func RegisterProvider(key string, p core.Plugins) {
	provider[key] = func() core.Plugins {
		return p
	}
}

func init() {
	RegisterProvider("selfhost", NewSelfHostMode())
}
