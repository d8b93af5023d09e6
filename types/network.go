package types

// Environment selects live or sandbox hosts.
type Environment string

const (
	EnvironmentSandbox Environment = "sandbox"
	EnvironmentLive    Environment = "live"
)

const (
	LiveAPIHost    = "https://api.checkout.com"
	SandboxAPIHost = "https://api.sandbox.checkout.com"

	LiveAccessHost    = "https://access.checkout.com"
	SandboxAccessHost = "https://access.sandbox.checkout.com"

	LiveFilesHost    = "https://files.checkout.com"
	SandboxFilesHost = "https://files.sandbox.checkout.com"

	LiveTransfersHost    = "https://transfers.checkout.com"
	SandboxTransfersHost = "https://transfers.sandbox.checkout.com"

	LiveBalancesHost    = "https://balances.checkout.com"
	SandboxBalancesHost = "https://balances.sandbox.checkout.com"
)

// APIHost returns the main API base URL.
func (e Environment) APIHost() string {
	if e == EnvironmentLive {
		return LiveAPIHost
	}
	return SandboxAPIHost
}

func (e Environment) IsLive() bool {
	return e == EnvironmentLive
}

func (e Environment) String() string {
	return string(e)
}
