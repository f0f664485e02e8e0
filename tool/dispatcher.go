package tool

import (
	"context"
	"fmt"

	"github.com/mukulkathayat/linkedin-mcp/httpclient"
	"github.com/rs/zerolog/log"
)

const (
	ExceptionUnknownTool = "UnknownTool"
	ExceptionValidation  = "ValidationError"
	ExceptionInternal    = "InternalError"
)

type Sender interface {
	Send(ctx context.Context, method, target string, body any) httpclient.Result
}

var _ Sender = (*httpclient.Client)(nil)

// Dispatcher runs tools by name. Every outcome, including bad arguments and
// panics, comes back as a Result.
type Dispatcher struct {
	catalog *Catalog
	sender  Sender
}

func NewDispatcher(catalog *Catalog, sender Sender) *Dispatcher {
	return &Dispatcher{
		catalog: catalog,
		sender:  sender,
	}
}

func (d *Dispatcher) Catalog() *Catalog {
	return d.catalog
}

func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) httpclient.Result {
	desc, ok := d.catalog.Lookup(name)
	if !ok {
		return httpclient.Fail(httpclient.NewArgumentFailure(
			ExceptionUnknownTool,
			fmt.Errorf("%w: %s", ErrUnknownTool, name),
		))
	}

	return d.Invoke(ctx, desc, args)
}

func (d *Dispatcher) Invoke(ctx context.Context, desc Descriptor, args map[string]any) (result httpclient.Result) { //nolint:nonamedreturns
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().
				Str("tool", desc.Name).
				Any("panic", rec).
				Msg("Tool invocation panicked")

			result = httpclient.Fail(httpclient.NewArgumentFailure(
				ExceptionInternal,
				fmt.Errorf("tool %s panicked: %v", desc.Name, rec), //nolint:err113
			))
		}
	}()

	req, err := desc.Build(args)
	if err != nil {
		log.Debug().Err(err).Str("tool", desc.Name).Msg("Tool arguments rejected")

		return httpclient.Fail(httpclient.NewArgumentFailure(ExceptionValidation, err))
	}

	var body any
	if req.Body != nil {
		body = req.Body
	}

	return d.sender.Send(ctx, req.Method, req.Target, body)
}
