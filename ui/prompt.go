package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/shuffll/cli/entity"
)

type Selection string

const (
	YesSelection Selection = "Yes"
	NoSelection  Selection = "No"
)

func PromptText(text string, required bool) (string, error) {
	prompt := promptui.Prompt{
		Label: text,
	}
	if required {
		prompt.Validate = func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("%s is required", text)
			}
			return nil
		}
	}
	return prompt.Run()
}

func PromptApiKey() (string, error) {
	prompt := promptui.Prompt{
		Label: "Enter your Shuffll API key",
		Mask:  '*',
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("API key can't be empty")
			}
			return nil
		},
	}
	key, err := prompt.Run()
	return strings.TrimSpace(key), err
}

// PromptOptions shows a dropdown. A single option is picked without asking.
func PromptOptions(label string, options []entity.Option) (entity.Option, error) {
	greenCheck := GreenText("✔")
	if len(options) == 1 {
		option := options[0]
		fmt.Printf("%s %s: %s\n", greenCheck, label, BlueText(option.Name))
		return option, nil
	}
	prompt := promptui.Select{
		Label: label,
		Items: options,
		Size:  10,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ .Name | underline }}`,
			Inactive: `{{ .Name }}`,
			Selected: fmt.Sprintf("%s %s: {{ .Name | magenta | bold }} ", greenCheck, label),
			Details:  `{{ if .Description }}{{ .Description | faint }}{{ end }}`,
		},
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(options[index].Name), strings.ToLower(input))
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return entity.Option{}, err
	}
	return options[i], nil
}

func PromptConfirm(label string, def bool) (bool, error) {
	cursor := 0
	if !def {
		cursor = 1
	}
	prompt := promptui.Select{
		Label:     label,
		Items:     []Selection{YesSelection, NoSelection},
		CursorPos: cursor,
	}
	_, selection, err := prompt.Run()
	return Selection(selection) == YesSelection, err
}
