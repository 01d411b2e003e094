package common

import (
	"os"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cast"
)

var (
	nodeOnce sync.Once
	idNode   *snowflake.Node
)

// UUIDint64 returns a cluster-safe int64 identifier. The snowflake node id
// is taken from SHOPCORE_NODE_ID (0-1023), default 0.
func UUIDint64() int64 {
	nodeOnce.Do(func() {
		nodeID := cast.ToInt64(os.Getenv("SHOPCORE_NODE_ID"))
		if nodeID < 0 || nodeID > 1023 {
			nodeID = 0
		}
		var err error
		idNode, err = snowflake.NewNode(nodeID)
		if err != nil {
			panic(err)
		}
	})
	return idNode.Generate().Int64()
}
