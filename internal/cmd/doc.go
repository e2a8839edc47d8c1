// Package cmd runs external programs: the game launcher for "play" and
// short helper commands.
//
// Failures include the program's stderr in the error message when it wrote
// any, which is usually more helpful than the bare exit status:
//
//	if err := cmd.RunContext(ctx, "", "steam", "steam://rungameid/881100"); err != nil {
//	    return fmt.Errorf("launch game: %w", err)
//	}
//
// [Start] launches a program without waiting for it, for the game itself.
package cmd
