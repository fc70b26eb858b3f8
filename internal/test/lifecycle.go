package test

import "go.uber.org/fx"

// LifecycleRecorder collects hooks so tests can run OnStart and OnStop by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever a graceful shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown records the invocation without blocking the caller.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
