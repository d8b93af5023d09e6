// Package resources maps the API's resource groups onto the transport.
// Every operation is one entry of the endpoint table plus, for a few
// groups, payload shaping before the call.
package resources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vitwit/checkout/transport"
	"github.com/vitwit/checkout/types"
)

// Sender performs a described call. *transport.Transport satisfies it.
type Sender interface {
	Send(ctx context.Context, desc *types.RequestDescriptor) (*types.ResponseEnvelope, error)
}

// Request carries the per-call inputs of an endpoint.
type Request struct {
	// Args fill the positional placeholders of the path template.
	Args           []string
	Params         types.Params
	Body           interface{}
	Prebuilt       *types.PrebuiltBody
	IdempotencyKey string
	Headers        map[string]string
}

// Caller resolves endpoint table entries into descriptors and sends them.
type Caller struct {
	sender Sender
	config *types.ClientConfig
}

// NewCaller creates a Caller.
func NewCaller(sender Sender, config *types.ClientConfig) *Caller {
	return &Caller{sender: sender, config: config}
}

// Call executes the named endpoint.
func (c *Caller) Call(ctx context.Context, name string, req Request) (*types.ResponseEnvelope, error) {
	ep, ok := Lookup(name)
	if !ok {
		return nil, types.NewValueError("unknown endpoint: " + name)
	}
	desc, err := c.Describe(ep, req)
	if err != nil {
		return nil, err
	}
	return c.sender.Send(ctx, desc)
}

// Describe builds the descriptor for one call without sending it.
func (c *Caller) Describe(ep Endpoint, req Request) (*types.RequestDescriptor, error) {
	u, err := c.URL(ep, req.Args...)
	if err != nil {
		return nil, err
	}
	return &types.RequestDescriptor{
		Endpoint:       ep.Name,
		Method:         ep.Method,
		URL:            transport.WithQuery(u, req.Params),
		Credential:     ep.Credential,
		Body:           req.Body,
		Prebuilt:       req.Prebuilt,
		IdempotencyKey: req.IdempotencyKey,
		Headers:        req.Headers,
		Raw:            ep.Raw,
	}, nil
}

// URL resolves an endpoint's host and path template for the configured
// environment. Path arguments are escaped and must all be non-empty.
func (c *Caller) URL(ep Endpoint, args ...string) (string, error) {
	path := ep.Path
	if c.config.IsSandbox() && ep.SandboxPath != "" {
		path = ep.SandboxPath
	}

	want := strings.Count(path, "%s")
	if len(args) != want {
		return "", types.NewValueError(fmt.Sprintf("%s expects %d path arguments, got %d", ep.Name, want, len(args)))
	}
	escaped := make([]interface{}, len(args))
	for i, a := range args {
		if strings.TrimSpace(a) == "" {
			return "", types.NewValueError(fmt.Sprintf("%s: path argument %d is empty", ep.Name, i+1))
		}
		escaped[i] = url.PathEscape(a)
	}

	return strings.TrimRight(c.host(ep.Host), "/") + fmt.Sprintf(path, escaped...), nil
}

// host returns the base URL for a host kind. A configured Host replaces
// every kind.
func (c *Caller) host(kind HostKind) string {
	if c.config.Host != "" {
		return c.config.Host
	}
	live := c.config.Environment.IsLive()
	switch kind {
	case HostAccess:
		return pick(live, types.LiveAccessHost, types.SandboxAccessHost)
	case HostFiles:
		return pick(live, types.LiveFilesHost, types.SandboxFilesHost)
	case HostTransfers:
		return pick(live, types.LiveTransfersHost, types.SandboxTransfersHost)
	case HostBalances:
		return pick(live, types.LiveBalancesHost, types.SandboxBalancesHost)
	default:
		return c.config.Environment.APIHost()
	}
}

func pick(live bool, liveHost, sandboxHost string) string {
	if live {
		return liveHost
	}
	return sandboxHost
}

func (c *Caller) do(ctx context.Context, name string, args ...string) (*types.ResponseEnvelope, error) {
	return c.Call(ctx, name, Request{Args: args})
}

func (c *Caller) query(ctx context.Context, name string, params types.Params, args ...string) (*types.ResponseEnvelope, error) {
	return c.Call(ctx, name, Request{Args: args, Params: params})
}

func (c *Caller) send(ctx context.Context, name string, body interface{}, args ...string) (*types.ResponseEnvelope, error) {
	return c.Call(ctx, name, Request{Args: args, Body: body})
}

func (c *Caller) sendIdempotent(ctx context.Context, name string, body interface{}, idempotencyKey string, args ...string) (*types.ResponseEnvelope, error) {
	return c.Call(ctx, name, Request{Args: args, Body: body, IdempotencyKey: idempotencyKey})
}
