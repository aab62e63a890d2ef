package cmd

import (
	"context"
	"fmt"

	"github.com/shuffll/cli/constants"
	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/errors"
	"github.com/shuffll/cli/logger"
	"github.com/shuffll/cli/ui"
)

func (h *Handler) Login(ctx context.Context, req *entity.CommandRequest) error {
	apiKey, err := req.Cmd.Flags().GetString("api-key")
	if err != nil {
		return err
	}
	openBrowser, err := req.Cmd.Flags().GetBool("browser")
	if err != nil {
		return err
	}

	if apiKey == "" {
		if !ui.IsInteractive() {
			return errors.ApiKeyEmpty
		}
		if openBrowser {
			if err := h.ctrl.ConfirmBrowserOpen("Opening your Shuffll API key page...", constants.ApiKeyURL); err != nil {
				return err
			}
		} else {
			fmt.Printf("🔑 Find your API key at %s\n", ui.BlueText(constants.ApiKeyURL))
		}
		apiKey, err = ui.PromptApiKey()
		if err != nil {
			return err
		}
	}

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Checking your API key...",
	})
	user, err := h.ctrl.Login(ctx, apiKey)
	ui.StopSpinner("")
	if err != nil {
		return err
	}

	logger.LogOut.Infof("🎉 Logged in as %s", ui.Bold(describeUser(user)))
	return nil
}

func (h *Handler) Logout(ctx context.Context, req *entity.CommandRequest) error {
	wiped, err := h.ctrl.Logout(ctx)
	if err != nil {
		return err
	}
	if !wiped {
		logger.LogOut.Infof("🚪  %s", ui.YellowText("Already logged out"))
		return nil
	}
	logger.LogOut.Infof("👋 %s", ui.YellowText("Logged out"))
	return nil
}

func (h *Handler) Whoami(ctx context.Context, req *entity.CommandRequest) error {
	user, err := h.ctrl.GetUser(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("👋 Hey, %s\n", ui.MagentaText(describeUser(user)))

	details := map[string]string{}
	for k := range user {
		if v := user.String(k); v != "" && k != "name" && k != "email" {
			details[k] = ui.Truncate(v, 60)
		}
	}
	if len(details) > 0 {
		fmt.Print(ui.KeyValues(details))
	}
	return nil
}

// describeUser renders "Name (email)", falling back to whichever is known.
func describeUser(user entity.Record) string {
	name, email := user.String("name"), user.String("email")
	if name == "" {
		name = user.String("fullName")
	}
	switch {
	case name != "" && email != "":
		return fmt.Sprintf("%s (%s)", name, email)
	case email != "":
		return email
	case name != "":
		return name
	default:
		return "Shuffll user"
	}
}
