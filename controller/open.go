package controller

import (
	"fmt"
	"os"

	"github.com/shuffll/cli/ui"
)

// ConfirmBrowserOpen asks before opening url. Without a terminal it only
// prints the url.
func (c *Controller) ConfirmBrowserOpen(spinnerMsg string, url string) error {
	if !ui.IsInteractive() {
		fmt.Println(url)
		return nil
	}

	fmt.Printf("%s Press Enter to open the browser (^C to quit)", ui.Bold(spinnerMsg))
	fmt.Fscanln(os.Stdin)
	return c.gtwy.OpenInBrowser(url)
}
