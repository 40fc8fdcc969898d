// Package typewriter implements the hero headline effect: a list of strings
// typed and deleted one rune at a time, looping forever.
//
// The package is split in two layers:
//
//   - Machine: a pure state machine (Typing, PausingBeforeDelete, Deleting).
//     Each transition returns an Effect telling the host when to tick next.
//   - Model: a Bubble Tea adapter that turns effects into tea.Tick commands.
//
// # Basic Usage
//
//	tw := typewriter.NewModel(typewriter.Config{
//	    Texts:        []string{"Go developer", "TUI enthusiast"},
//	    TypeSpeed:    100 * time.Millisecond,
//	    DeleteSpeed:  50 * time.Millisecond,
//	    DelayBetween: 2 * time.Second,
//	})
//	cmd := tw.Init()
//
// Stop the model when it is torn down; pending ticks become no-ops.
package typewriter
