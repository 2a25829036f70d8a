package initialize

import (
	"io"
	stdlog "log"
	"os"

	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"

	"github.com/dongdio/OpenBlog/global"
	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/utility/utils"
)

var logFormatter = &log.TextFormatter{
	ForceColors:               true,
	EnvironmentOverrideColors: true,
	TimestampFormat:           "2006-01-02 15:04:05",
	FullTimestamp:             true,
}

func init() {
	log.SetFormatter(logFormatter)
	utils.Log.SetFormatter(logFormatter)
}

func verbose() bool {
	return global.Debug || global.Dev
}

// logWriter returns the rotating file output, mirrored to stdout when verbose
// or --log-std. It returns nil when file logging is disabled.
func logWriter(c conf.LogConfig) io.Writer {
	if !c.Enable {
		return nil
	}
	var w io.Writer = &lumberjack.Logger{
		Filename:   c.Name,
		MaxSize:    c.MaxSize, // megabytes
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge, // days
		Compress:   c.Compress,
	}
	if verbose() || global.LogStd {
		w = io.MultiWriter(os.Stdout, w)
	}
	return w
}

func initLog() {
	w := logWriter(conf.Conf.Log)
	for _, l := range []*log.Logger{log.StandardLogger(), utils.Log} {
		l.SetLevel(log.InfoLevel)
		l.SetReportCaller(verbose())
		if verbose() {
			l.SetLevel(log.DebugLevel)
		}
		if w != nil {
			l.SetOutput(w)
		}
	}
	stdlog.SetOutput(log.StandardLogger().Out)
	utils.Log.Debugf("log level %s", utils.Log.GetLevel())
}
