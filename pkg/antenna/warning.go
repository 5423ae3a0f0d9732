package antenna

// Warning codes
const (
	WarnDrillAutoZero     = "drill-auto-zero"
	WarnDrillExceedsTrace = "drill-exceeds-conductor"
)

// Warning is a non-fatal remark about the input parameters
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return "WARNING: " + w.Message
}
