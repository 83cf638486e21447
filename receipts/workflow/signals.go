package workflow

const (
	// Signal names
	CancelReceiptSignalName = "cancel-receipt"
)

// CancelReceiptSignal asks the pipeline to stop and mark the receipt canceled.
type CancelReceiptSignal struct {
	Reason     string `json:"reason"`
	CanceledBy string `json:"canceled_by"`
}
