package head

import (
	"fmt"

	"github.com/edwinhayes/rosgo/ros"
	"github.com/google/uuid"
)

// goalIDGenerator produces unique goal IDs in the actionlib convention:
// node name, a unique token, and the request stamp.
type goalIDGenerator struct {
	nodeName string
}

func newGoalIDGenerator(nodeName string) *goalIDGenerator {
	return &goalIDGenerator{nodeName: nodeName}
}

func (g *goalIDGenerator) generateID() string {
	timeNow := ros.Now()
	return fmt.Sprintf("%s-%s-%d-%d", g.nodeName, uuid.NewString(), timeNow.Sec, timeNow.NSec)
}
