package sortbench

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log receives the package's progress messages. Nothing is logged while a
// trial is being timed.
var Log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces Log. A nil logger discards everything.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		l = discard
	}
	Log = l
}
