package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Root starts the interactive loop. It restores no state itself; the
// session was already restored when the App was built, so a returning
// user lands signed in.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to BlogNest CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Println("Signed in as", a.sessions.Email())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
