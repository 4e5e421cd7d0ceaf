// persistence/interface.go
package persistence

import (
	"fmt"

	"github.com/quizopoly/gameserver/stats"
)

// Database is the optional write-behind store for player stats. The game
// never reads from it at runtime; the in-memory tracker stays canonical.
type Database interface {
	SavePlayerStats(name string, rec stats.Record) error
	LoadPlayerStats(name string) (stats.Record, error)
	Close() error
}

var ErrRecordNotFound = fmt.Errorf("record not found")
