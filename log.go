package wcfg

import (
	"os"

	"github.com/rs/zerolog"
)

// logger returns a zerolog.Logger gated on g.debug, producing structured,
// queryable events. A zerolog.Nop() logger costs nothing when debug mode
// is off.
func (g *Grammar) logger() zerolog.Logger {
	if !g.debug {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
