// Package hooks connects the session subsystem to the host application's
// lifecycle events.
//
// A [Dispatcher] holds typed handlers registered at startup and runs them
// sequentially for each event. Handlers report an [Outcome] instead of an
// error: failures are logged by the dispatcher and never reach the host.
package hooks
