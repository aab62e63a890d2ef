package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/shuffll/cli/cmd"
	"github.com/shuffll/cli/configs"
	"github.com/shuffll/cli/constants"
	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/logger"
	"github.com/shuffll/cli/node"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "shuffll",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "🎬 Shuffll. AI-powered video creation.",
	Long:          "Interact with 🎬 Shuffll via CLI \n\n Create projects, browse templates and invite guests. Docs: https://docs.shuffll.com",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.ApplyLogLevel(verbose)
	},
}

var exitCode = 0

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		defer func() {
			if r := recover(); r != nil {
				exitCode = 1
				panicFn(ctx, &entity.PanicRequest{
					Command:    cmd.Name(),
					PanicError: fmt.Sprint(r),
					Stacktrace: string(debug.Stack()),
					Args:       args,
				})
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		err := fn(ctx, req)
		if err != nil {
			exitCode = 1
			fmt.Fprintln(os.Stderr, err.Error())
		}
		return nil
	}
}

func addRunFlags(c *cobra.Command) {
	c.Flags().StringArrayP("param", "p", nil, "Set a parameter, e.g. --param prompt='={{ .url }}' or --param additionalFields.language=en. Values starting with = are rendered per input record")
	c.Flags().String("params", "", "YAML file with parameters")
	c.Flags().StringP("input", "i", "", "Input records: a JSON array, JSON lines or one JSON object (- for stdin)")
	c.Flags().Bool("continue-on-fail", false, "Record failures as error items instead of stopping")
	c.Flags().Bool("no-prompt", false, "Never ask for missing values")
	c.Flags().Bool("paired", false, "Print each record with the index of the input record it came from")
}

func init() {
	if err := configs.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	// Initializes all commands
	handler := cmd.New()

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log requests and responses to stderr")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Shuffll with an API key",
		RunE:  contextualize(handler.Login, handler.Panic),
	}
	loginCmd.Flags().String("api-key", "", "API key to store (prompted for when omitted)")
	loginCmd.Flags().Bool("browser", false, "Open the API key page in the browser first")
	rootCmd.AddCommand(loginCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Logout of Shuffll",
		RunE:  contextualize(handler.Logout, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the user the API key belongs to",
		RunE:  contextualize(handler.Whoami, handler.Panic),
	})

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run an operation once per input record",
		Long:  "Run an operation once per input record and print the output records as JSON.",
		Example: "  shuffll run --resource project --operation export --param projectId=P --param webhook=https://hook\n" +
			"  cat guests.json | shuffll run -r guest --input - --param projectId=P --param email='={{ .email }}' --param guestName='={{ .name }}'",
		RunE: contextualize(handler.Run, handler.Panic),
	}
	runCmd.Flags().StringP("resource", "r", "", "Resource: "+strings.Join(resourceNames(), ", "))
	runCmd.Flags().StringP("operation", "o", "", "Operation of the resource (defaults per resource)")
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)

	// One command group per resource, one subcommand per operation.
	commandNames := map[string]string{
		node.OperationCreate:             "create",
		node.OperationCreateFromTemplate: "create-from-template",
		node.OperationExport:             "export",
		node.OperationGetAll:             "list",
		node.OperationGet:                "get",
		node.OperationInvite:             "invite",
	}
	for _, r := range node.Resources {
		resourceCmd := &cobra.Command{
			Use:   r.Value,
			Short: r.Name,
		}
		for _, op := range r.Operations {
			opCmd := &cobra.Command{
				Use:   commandNames[op.Value],
				Short: op.Description,
				RunE:  contextualize(handler.Action(r.Value, op.Value), handler.Panic),
			}
			addRunFlags(opCmd)
			resourceCmd.AddCommand(opCmd)
		}
		rootCmd.AddCommand(resourceCmd)
	}

	optionsCmd := &cobra.Command{
		Use:       "options <method>",
		Short:     "List the choices of a dropdown",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: node.LoadOptionsMethods(),
		RunE:      contextualize(handler.Options, handler.Panic),
	}
	optionsCmd.Flags().StringArrayP("param", "p", nil, "Selections made so far, e.g. --param organizationId=123")
	optionsCmd.Flags().Bool("json", false, "Print as JSON")
	rootCmd.AddCommand(optionsCmd)

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Show the fields of every operation",
		RunE:  contextualize(handler.Schema, handler.Panic),
	}
	schemaCmd.Flags().StringP("resource", "r", "", "Only show this resource")
	schemaCmd.Flags().StringP("operation", "o", "", "Only show this operation")
	schemaCmd.Flags().Bool("json", false, "Print as JSON")
	rootCmd.AddCommand(schemaCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "docs",
		Short: "Open Shuffll Documentation in default browser",
		RunE:  contextualize(handler.Docs, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get the version of the Shuffll CLI",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
}

func resourceNames() []string {
	names := make([]string, 0, len(node.Resources))
	for _, r := range node.Resources {
		names = append(names, r.Value)
	}
	return names
}

func main() {
	logger.ApplyLogLevel(false)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
