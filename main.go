// =============================================================================
// konvertorMzdy - Application Entry Point
// =============================================================================

package main

import "github.com/LukasBenko/konvertorMzdy/cmd"

func main() {
	cmd.Execute()
}
