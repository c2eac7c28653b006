package async

import "context"

// Worker is a long running job. Run calls done once it has stopped.
type Worker interface {
	Run(ctx context.Context, done func())
	Shutdown()
}
