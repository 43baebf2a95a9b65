// Command reqinfo prints how reqinfo classifies the request described
// by its own process environment.  Install it as a CGI script, or
// export REQUEST_METHOD, REQUEST_URI and friends in a shell, to check
// what a server is passing along.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Environ).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
