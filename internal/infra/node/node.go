package node

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Set at build time through -ldflags.
var (
	Version    = "development"
	CommitHash = "unknown"
)

type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
	StartedAt  time.Time
}

func (n Node) Uptime() time.Duration {
	return time.Since(n.StartedAt)
}

var (
	current     Node
	currentOnce sync.Once
)

// GetNodeInfo returns the identity of this process, resolved once.
func GetNodeInfo() Node {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "localhost"
		}

		current = Node{
			ID:         uuid.NewString(),
			Hostname:   hostname,
			Version:    Version,
			CommitHash: CommitHash,
			StartedAt:  time.Now(),
		}
	})

	return current
}
