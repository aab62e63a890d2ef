package errors

import (
	"fmt"

	"github.com/shuffll/cli/constants"
	"github.com/shuffll/cli/ui"
)

type ShuffllError error

var (
	UserConfigNotFound   ShuffllError = fmt.Errorf("%s\nRun %s", ui.RedText("Not logged in."), ui.Bold("shuffll login"))
	UserConfigUnreadable ShuffllError = fmt.Errorf("%s\nRun %s to store your API key again.", ui.RedText("Your Shuffll config could not be read."), ui.Bold("shuffll login"))
	ApiKeyEmpty          ShuffllError = fmt.Errorf("%s", ui.RedText("The API key can't be empty."))
	ApiKeyRejected       ShuffllError = fmt.Errorf("%s\nCopy a fresh key from %s and run %s", ui.RedText("Shuffll rejected the API key."), constants.ApiKeyURL, ui.Bold("shuffll login"))
	NoOrganizationsFound ShuffllError = fmt.Errorf("%s", ui.RedText("No organizations found for this API key."))
	NoWorkspacesFound    ShuffllError = fmt.Errorf("%s", ui.RedText("No workspaces found in the selected organization."))
	NoTemplatesFound     ShuffllError = fmt.Errorf("%s", ui.RedText("No templates found in the selected workspace."))
	NoOptionsFound       ShuffllError = fmt.Errorf("%s", ui.RedText("Nothing to choose from."))
	ResourceNotSpecified ShuffllError = fmt.Errorf("%s\nRun %s", ui.RedText("Specify what to run."), ui.Bold("shuffll run --resource <resource> --operation <operation>"))
	RunFailed            ShuffllError = fmt.Errorf("%s", ui.RedText("The run stopped at a failing item."))
)

// MissingParameter is returned when a required field has no value and there is
// no terminal to ask for it.
func MissingParameter(name string) ShuffllError {
	return fmt.Errorf("%s\nPass it with %s", ui.RedText(fmt.Sprintf("Missing value for %q.", name)), ui.Bold(fmt.Sprintf("--param %s=<value>", name)))
}

func InvalidParameter(arg string) ShuffllError {
	return fmt.Errorf("%s\nParameters look like %s", ui.RedText(fmt.Sprintf("Can't read parameter %q.", arg)), ui.Bold("name=value"))
}
