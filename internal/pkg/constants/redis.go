package constants

// Redis key formats for the OTP cache backend. Codes are keyed by
// normalized phone: issuance does not know the role yet, only
// verification does, and the role only selects the user partition.
const (
	// KeyOTPEntry holds the JSON encoded code/attempts entry: otp:code:<phone>
	KeyOTPEntry = "otp:code:%s"

	// KeyOTPRate holds the JSON encoded rate window: otp:rate:<phone>
	KeyOTPRate = "otp:rate:%s"
)
