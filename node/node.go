package node

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shuffll/cli/entity"
	"github.com/sirupsen/logrus"
)

type Node struct {
	client Client
	log    logrus.FieldLogger
}

func New(client Client, log logrus.FieldLogger) *Node {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Node{
		client: client,
		log:    log,
	}
}

// ItemError is returned when an input record fails and the host does not
// continue on failure.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %s", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// UnsupportedActionError is returned before any record runs when the
// resource/operation pair is not one the node offers.
type UnsupportedActionError struct {
	Action Action
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("the operation %q is not supported for resource %q", e.Action.Operation, e.Action.Resource)
}

// SelectedAction reads resource and operation from the first record, the same
// for the whole run.
func SelectedAction(host Host) (Action, error) {
	resource, err := selector(host, "resource", DefaultResource)
	if err != nil {
		return Action{}, err
	}

	def, ok := LookupResource(resource)
	if !ok {
		return Action{}, &UnsupportedActionError{Action: Action{Resource: resource}}
	}

	operation, err := selector(host, "operation", def.DefaultOperation)
	if err != nil {
		return Action{}, err
	}

	a := Action{Resource: resource, Operation: operation}
	if !Supported(a) {
		return Action{}, &UnsupportedActionError{Action: a}
	}
	return a, nil
}

func selector(host Host, name, fallback string) (string, error) {
	v, ok, err := host.Parameter(name, 0)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	s, err := toString(v)
	if err != nil {
		return "", errors.Wrapf(err, "parameter %q", name)
	}
	if s == "" {
		return fallback, nil
	}
	return s, nil
}

// Execute runs the selected action once per input record, in order, and
// returns the collected output records.
func (n *Node) Execute(ctx context.Context, host Host) ([]entity.Item, error) {
	action, err := SelectedAction(host)
	if err != nil {
		return nil, err
	}
	run := actions[action]

	items := host.InputData()
	out := []entity.Item{}
	for i := range items {
		log := n.log.WithFields(logrus.Fields{
			"resource":  action.Resource,
			"operation": action.Operation,
			"item":      i,
		})

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := run(ctx, n.client, &params{host: host, action: action, index: i})
		if err != nil {
			if host.ContinueOnFail() {
				log.WithError(err).Warn("item failed")
				out = append(out, entity.NewErrorItem(err, i))
				continue
			}
			log.WithError(err).Debug("item failed, aborting")
			return nil, &ItemError{Index: i, Err: err}
		}

		log.WithField("records", len(records)).Debug("item done")
		for _, r := range records {
			out = append(out, entity.Item{JSON: r, PairedItem: i})
		}
	}

	return out, nil
}

// TestCredential runs the credential probe with whatever key the client carries.
func (n *Node) TestCredential(ctx context.Context) (entity.Record, error) {
	resp, err := n.client.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	return entity.NewRecord(resp), nil
}
