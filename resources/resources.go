package resources

import (
	"github.com/vitwit/checkout/transport"
	"github.com/vitwit/checkout/types"
	"github.com/vitwit/checkout/verification"
)

// Options overrides the collaborators used by the resource groups.
type Options struct {
	Validator verification.Validator
	Multipart transport.MultipartBuilder
}

// Client groups every API resource over one Caller.
type Client struct {
	Access          *Access
	Payments        *Payments
	Sources         *Sources
	Tokens          *Tokens
	Instruments     *Instruments
	Customers       *Customers
	Disputes        *Disputes
	Webhooks        *Webhooks
	Events          *Events
	Workflows       *Workflows
	Files           *Files
	Reports         *Reports
	Reconciliation  *Reconciliation
	HostedPayments  *HostedPayments
	PaymentLinks    *PaymentLinks
	PaymentContexts *PaymentContexts
	PaymentSessions *PaymentSessions
	Sessions        *Sessions
	Balances        *Balances
	Transfers       *Transfers
	Platforms       *Platforms
	Financial       *Financial
	Forex           *Forex
	Issuing         *Issuing
	Risk            *Risk
	CardMetadata    *CardMetadata
	ApplePay        *ApplePay
	Klarna          *Klarna
	Ideal           *Ideal
}

// New wires every resource group to sender.
func New(sender Sender, config *types.ClientConfig, opts Options) *Client {
	c := NewCaller(sender, config)
	mp := opts.Multipart
	if mp == nil {
		mp = transport.DefaultMultipart
	}

	return &Client{
		Access:          NewAccess(c),
		Payments:        NewPayments(c, opts.Validator),
		Sources:         &Sources{c: c},
		Tokens:          &Tokens{c: c},
		Instruments:     &Instruments{c: c},
		Customers:       &Customers{c: c},
		Disputes:        &Disputes{c: c},
		Webhooks:        &Webhooks{c: c},
		Events:          &Events{c: c},
		Workflows:       &Workflows{c: c},
		Files:           &Files{c: c, multipart: mp},
		Reports:         &Reports{c: c},
		Reconciliation:  &Reconciliation{c: c},
		HostedPayments:  &HostedPayments{c: c},
		PaymentLinks:    &PaymentLinks{c: c},
		PaymentContexts: &PaymentContexts{c: c},
		PaymentSessions: &PaymentSessions{c: c},
		Sessions:        &Sessions{c: c},
		Balances:        &Balances{c: c},
		Transfers:       &Transfers{c: c},
		Platforms:       &Platforms{c: c, multipart: mp},
		Financial:       &Financial{c: c},
		Forex:           &Forex{c: c},
		Issuing:         &Issuing{c: c},
		Risk:            &Risk{c: c},
		CardMetadata:    &CardMetadata{c: c},
		ApplePay:        &ApplePay{c: c},
		Klarna:          &Klarna{c: c},
		Ideal:           &Ideal{c: c},
	}
}
