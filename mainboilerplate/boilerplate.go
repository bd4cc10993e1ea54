// Package mainboilerplate holds the shared initialization glue of this
// project's programs: combined INI, environment, and flag configuration
// parsing, logger setup, and fatal error handling. Methods are narrowly
// scoped so programs pick just the pieces they need.
package mainboilerplate

import (
	log "github.com/sirupsen/logrus"
)

// Must panics if |err| is non-nil, supplying |msg| and |extra| as
// formatter and fields of the generated panic.
func Must(err error, msg string, extra ...interface{}) {
	if err == nil {
		return
	}
	var f = log.Fields{"err": err}
	for i := 0; i+1 < len(extra); i += 2 {
		f[extra[i].(string)] = extra[i+1]
	}
	log.WithFields(f).Panic(msg)
}
