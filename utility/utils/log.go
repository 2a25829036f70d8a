package utils

import (
	"github.com/sirupsen/logrus"
)

// Log is the application logger. Packages that do not need the standard
// logger's global configuration log through it.
var Log = logrus.New()
