package initialize

import (
	log "github.com/sirupsen/logrus"

	"github.com/dongdio/OpenBlog/utility/errs"
)

// Bootstrap runs the startup pipeline and exits the process on a fatal step.
func (a *App) Bootstrap() {
	_, err := a.Starter.Run()
	if errs.Is(err, errs.AlreadyBootstrapped) {
		log.Warn("startup pipeline already ran, ignoring")
		return
	}
	if err != nil {
		log.Fatalf("failed to bootstrap: %+v", err)
	}
}
