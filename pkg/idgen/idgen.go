// Package idgen issues process-unique, time-ordered identifiers for
// editor-created entities. Snowflake IDs embed a millisecond timestamp,
// so ids generated later always compare greater.
package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *snowflake.Node
)

func getNode() *snowflake.Node {
	once.Do(func() {
		n, err := snowflake.NewNode(1)
		if err != nil {
			panic(fmt.Sprintf("idgen: cannot create snowflake node: %v", err))
		}
		node = n
	})
	return node
}

// NewProjectID returns an id for a project created without one.
// Callers must not rely on the format beyond uniqueness.
func NewProjectID() string {
	return fmt.Sprintf("project-%s", getNode().Generate())
}

// NewThemeID returns an id for a user-authored theme.
func NewThemeID() string {
	return fmt.Sprintf("theme-%s", getNode().Generate())
}
