package resources

import (
	"net/http"
	"sort"

	"github.com/vitwit/checkout/types"
)

// HostKind selects which API host an endpoint lives on.
type HostKind int

const (
	HostAPI HostKind = iota
	HostAccess
	HostFiles
	HostTransfers
	HostBalances
)

// Endpoint is one row of the resource mapping table.
type Endpoint struct {
	Name   string
	Method string
	Host   HostKind
	// Path is a template with %s placeholders for positional arguments.
	Path string
	// SandboxPath replaces Path in the sandbox environment when set.
	SandboxPath string
	Credential  types.Credential
	// Raw marks CSV/file downloads.
	Raw bool
}

const (
	secret = types.CredentialSecretKey
	public = types.CredentialPublicKey
	bearer = types.CredentialAccessToken
)

var endpointTable = []Endpoint{
	{Name: "access.token", Method: http.MethodPost, Host: HostAccess, Path: "/connect/token", Credential: types.CredentialClientCredentials},

	{Name: "payments.request", Method: http.MethodPost, Path: "/payments", Credential: secret},
	{Name: "payments.list", Method: http.MethodGet, Path: "/payments", Credential: secret},
	{Name: "payments.get", Method: http.MethodGet, Path: "/payments/%s", Credential: secret},
	{Name: "payments.actions", Method: http.MethodGet, Path: "/payments/%s/actions", Credential: secret},
	{Name: "payments.increment", Method: http.MethodPost, Path: "/payments/%s/authorizations", Credential: secret},
	{Name: "payments.capture", Method: http.MethodPost, Path: "/payments/%s/captures", Credential: secret},
	{Name: "payments.refund", Method: http.MethodPost, Path: "/payments/%s/refunds", Credential: secret},
	{Name: "payments.void", Method: http.MethodPost, Path: "/payments/%s/voids", Credential: secret},

	{Name: "sources.add", Method: http.MethodPost, Path: "/sources", Credential: secret},
	{Name: "tokens.request", Method: http.MethodPost, Path: "/tokens", Credential: public},

	{Name: "instruments.create", Method: http.MethodPost, Path: "/instruments", Credential: secret},
	{Name: "instruments.get", Method: http.MethodGet, Path: "/instruments/%s", Credential: secret},
	{Name: "instruments.update", Method: http.MethodPatch, Path: "/instruments/%s", Credential: secret},
	{Name: "instruments.delete", Method: http.MethodDelete, Path: "/instruments/%s", Credential: secret},
	{Name: "instruments.bank_account_fields", Method: http.MethodGet, Path: "/validation/bank-accounts/%s/%s", Credential: bearer},

	{Name: "customers.create", Method: http.MethodPost, Path: "/customers", Credential: secret},
	{Name: "customers.get", Method: http.MethodGet, Path: "/customers/%s", Credential: secret},
	{Name: "customers.update", Method: http.MethodPatch, Path: "/customers/%s", Credential: secret},
	{Name: "customers.delete", Method: http.MethodDelete, Path: "/customers/%s", Credential: secret},

	{Name: "disputes.list", Method: http.MethodGet, Path: "/disputes", Credential: secret},
	{Name: "disputes.get", Method: http.MethodGet, Path: "/disputes/%s", Credential: secret},
	{Name: "disputes.accept", Method: http.MethodPost, Path: "/disputes/%s/accept", Credential: secret},
	{Name: "disputes.provide_evidence", Method: http.MethodPut, Path: "/disputes/%s/evidence", Credential: secret},
	{Name: "disputes.get_evidence", Method: http.MethodGet, Path: "/disputes/%s/evidence", Credential: secret},
	{Name: "disputes.submit_evidence", Method: http.MethodPost, Path: "/disputes/%s/evidence", Credential: secret},
	{Name: "disputes.scheme_files", Method: http.MethodGet, Path: "/disputes/%s/schemefiles", Credential: secret},

	{Name: "webhooks.list", Method: http.MethodGet, Path: "/webhooks", Credential: secret},
	{Name: "webhooks.register", Method: http.MethodPost, Path: "/webhooks", Credential: secret},
	{Name: "webhooks.get", Method: http.MethodGet, Path: "/webhooks/%s", Credential: secret},
	{Name: "webhooks.update", Method: http.MethodPut, Path: "/webhooks/%s", Credential: secret},
	{Name: "webhooks.patch", Method: http.MethodPatch, Path: "/webhooks/%s", Credential: secret},
	{Name: "webhooks.delete", Method: http.MethodDelete, Path: "/webhooks/%s", Credential: secret},

	{Name: "events.types", Method: http.MethodGet, Path: "/event-types", Credential: secret},
	{Name: "events.list", Method: http.MethodGet, Path: "/events", Credential: secret},
	{Name: "events.get", Method: http.MethodGet, Path: "/events/%s", Credential: secret},
	{Name: "events.notification", Method: http.MethodGet, Path: "/events/%s/notifications/%s", Credential: secret},
	{Name: "events.retry_webhook", Method: http.MethodPost, Path: "/events/%s/webhooks/%s/retry", Credential: secret},
	{Name: "events.retry_all_webhooks", Method: http.MethodPost, Path: "/events/%s/webhooks/retry", Credential: secret},

	{Name: "workflows.list", Method: http.MethodGet, Path: "/workflows", Credential: secret},
	{Name: "workflows.add", Method: http.MethodPost, Path: "/workflows", Credential: secret},
	{Name: "workflows.get", Method: http.MethodGet, Path: "/workflows/%s", Credential: secret},
	{Name: "workflows.remove", Method: http.MethodDelete, Path: "/workflows/%s", Credential: secret},
	{Name: "workflows.patch", Method: http.MethodPatch, Path: "/workflows/%s", Credential: secret},
	{Name: "workflows.event_types", Method: http.MethodGet, Path: "/workflows/event-types", Credential: secret},
	{Name: "workflows.event", Method: http.MethodGet, Path: "/workflows/events/%s", Credential: secret},
	{Name: "workflows.reflow", Method: http.MethodPost, Path: "/workflows/events/%s/reflow", Credential: secret},

	{Name: "files.upload", Method: http.MethodPost, Path: "/files", Credential: secret},
	{Name: "files.get", Method: http.MethodGet, Path: "/files/%s", Credential: secret},
	{Name: "platforms.files.upload", Method: http.MethodPost, Host: HostFiles, Path: "/files", Credential: bearer},

	{Name: "reports.list", Method: http.MethodGet, Path: "/reports", Credential: secret},
	{Name: "reports.get", Method: http.MethodGet, Path: "/reports/%s", Credential: secret},
	{Name: "reports.file", Method: http.MethodGet, Path: "/reports/%s/files/%s", Credential: secret, Raw: true},

	{Name: "reconciliation.payments", Method: http.MethodGet, Path: "/reporting/payments", Credential: secret},
	{Name: "reconciliation.payments_csv", Method: http.MethodGet, Path: "/reporting/payments/download", Credential: secret, Raw: true},
	{Name: "reconciliation.statements", Method: http.MethodGet, Path: "/reporting/statements", Credential: secret},
	{Name: "reconciliation.statement_csv", Method: http.MethodGet, Path: "/reporting/statements/%s/payments/download", Credential: secret, Raw: true},

	{Name: "hosted_payments.create", Method: http.MethodPost, Path: "/hosted-payments", Credential: secret},
	{Name: "hosted_payments.get", Method: http.MethodGet, Path: "/hosted-payments/%s", Credential: secret},
	{Name: "payment_links.create", Method: http.MethodPost, Path: "/payment-links", Credential: secret},
	{Name: "payment_links.get", Method: http.MethodGet, Path: "/payment-links/%s", Credential: secret},
	{Name: "payment_contexts.request", Method: http.MethodPost, Path: "/payment-contexts", Credential: secret},
	{Name: "payment_contexts.get", Method: http.MethodGet, Path: "/payment-contexts/%s", Credential: secret},
	{Name: "payment_sessions.request", Method: http.MethodPost, Path: "/payment-sessions", Credential: secret},

	{Name: "sessions.request", Method: http.MethodPost, Path: "/sessions", Credential: bearer},
	{Name: "sessions.get", Method: http.MethodGet, Path: "/sessions/%s", Credential: bearer},
	{Name: "sessions.update", Method: http.MethodPut, Path: "/sessions/%s/collect-data", Credential: bearer},
	{Name: "sessions.complete", Method: http.MethodPost, Path: "/sessions/%s/complete", Credential: bearer},

	{Name: "balances.retrieve", Method: http.MethodGet, Host: HostBalances, Path: "/balances/%s", Credential: secret},
	{Name: "transfers.initiate", Method: http.MethodPost, Host: HostTransfers, Path: "/transfers", Credential: secret},
	{Name: "transfers.retrieve", Method: http.MethodGet, Host: HostTransfers, Path: "/transfers/%s", Credential: secret},

	{Name: "platforms.onboard", Method: http.MethodPost, Path: "/accounts/entities", Credential: bearer},
	{Name: "platforms.get", Method: http.MethodGet, Path: "/accounts/entities/%s", Credential: bearer},
	{Name: "platforms.update", Method: http.MethodPut, Path: "/accounts/entities/%s", Credential: bearer},
	{Name: "platforms.add_instrument", Method: http.MethodPost, Path: "/accounts/entities/%s/instruments", Credential: bearer},

	{Name: "financial.actions", Method: http.MethodGet, Path: "/financial-actions", Credential: secret},

	{Name: "forex.quote", Method: http.MethodPost, Path: "/forex/quotes", Credential: bearer},
	{Name: "forex.rates", Method: http.MethodGet, Path: "/forex/rates", Credential: bearer},

	{Name: "risk.pre_authentication", Method: http.MethodPost, Path: "/risk/assessments/pre-authentication", Credential: secret},
	{Name: "risk.pre_capture", Method: http.MethodPost, Path: "/risk/assessments/pre-capture", Credential: secret},

	{Name: "card_metadata.get", Method: http.MethodPost, Path: "/metadata/card", Credential: secret},

	{Name: "issuing.create_cardholder", Method: http.MethodPost, Path: "/issuing/cardholders", Credential: bearer},
	{Name: "issuing.get_cardholder", Method: http.MethodGet, Path: "/issuing/cardholders/%s", Credential: bearer},
	{Name: "issuing.create_card", Method: http.MethodPost, Path: "/issuing/cards", Credential: bearer},
	{Name: "issuing.get_card", Method: http.MethodGet, Path: "/issuing/cards/%s", Credential: bearer},

	{Name: "applepay.upload_certificate", Method: http.MethodPost, Path: "/applepay/certificates", Credential: public},
	{Name: "applepay.enroll", Method: http.MethodPost, Path: "/applepay/enrollments", Credential: bearer},
	{Name: "applepay.generate_csr", Method: http.MethodPost, Path: "/applepay/signing-requests", Credential: public},

	{Name: "klarna.credit_session", Method: http.MethodPost, Path: "/klarna/credit-sessions", SandboxPath: "/klarna-external/credit-sessions", Credential: public},
	{Name: "ideal.info", Method: http.MethodGet, Path: "/ideal-external", Credential: secret},
}

var endpoints = func() map[string]Endpoint {
	m := make(map[string]Endpoint, len(endpointTable))
	for _, ep := range endpointTable {
		m[ep.Name] = ep
	}
	return m
}()

// Lookup returns the endpoint registered under name.
func Lookup(name string) (Endpoint, bool) {
	ep, ok := endpoints[name]
	return ep, ok
}

// Endpoints returns the mapping table sorted by name.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpointTable))
	copy(out, endpointTable)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
