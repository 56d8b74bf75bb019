package domain

const (
	CaseStatusOpen   = "Open"
	CaseStatusFunded = "Funded"
)

const (
	TxnTypeTopup    = "TOPUP"
	TxnTypeDonation = "DONATION"
	TxnTypeAutopay  = "AUTOPAY"
)

const (
	DefaultTheme         = "light"
	DefaultPreferredBank = "Wallet only (demo)"
)

// DefaultAutopayCents is the suggested daily amount when autopay is first enabled.
const DefaultAutopayCents = 100

// Preset top-up amounts in cents offered by clients.
var TopupPresetsCents = []int64{500, 1000, 2500, 5000}
