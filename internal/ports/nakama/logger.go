package nakama

import (
	"io"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/sirupsen/logrus"
)

// runtimeHook forwards logrus entries to the Nakama runtime logger.
type runtimeHook struct {
	logger runtime.Logger
}

func (h runtimeHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h runtimeHook) Fire(entry *logrus.Entry) error {
	l := h.logger
	if len(entry.Data) > 0 {
		l = l.WithFields(map[string]interface{}(entry.Data))
	}
	switch entry.Level {
	case logrus.TraceLevel, logrus.DebugLevel:
		l.Debug("%s", entry.Message)
	case logrus.InfoLevel:
		l.Info("%s", entry.Message)
	case logrus.WarnLevel:
		l.Warn("%s", entry.Message)
	default:
		l.Error("%s", entry.Message)
	}
	return nil
}

// newAppLogger builds the logrus logger handed to the app service. Output
// goes only through the runtime logger.
func newAppLogger(logger runtime.Logger) logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	l.AddHook(runtimeHook{logger: logger})
	return l.WithField("component", "app")
}
