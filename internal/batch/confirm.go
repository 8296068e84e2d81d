package batch

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// confirmOverwrite prompts on the terminal before an existing output file is
// replaced. Declining is the safe default.
func confirmOverwrite(path string) (bool, error) {
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite %s?", path),
		Default: false,
	}
	var ok bool
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
