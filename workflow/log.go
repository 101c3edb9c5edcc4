package workflow

import "log"

var debugEnabled bool

// SetDebug turns verbose logging on or off for the whole package.
func SetDebug(on bool) {
	debugEnabled = on
}

func debugf(format string, v ...interface{}) {
	if debugEnabled {
		log.Printf(format, v...)
	}
}
