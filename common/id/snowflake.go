package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the process-wide generator node. Calling it again is a
// no-op; only the first node ID takes effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a time-ordered int64 that is unique across nodes, used
// as the per-request ID. Init must have been called first.
func New() int64 {
	return node.Generate().Int64()
}
