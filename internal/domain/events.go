package domain

type CommissionEventType string

const (
	EventCommissionComputed CommissionEventType = "COMMISSION_COMPUTED"
	EventCommissionReversed CommissionEventType = "COMMISSION_REVERSED"
	EventIngestionFinished  CommissionEventType = "INGESTION_FINISHED"
)

// CommissionEvent is the engine's outbound notification. Amounts travel
// as decimal strings to avoid float drift on the wire.
type CommissionEvent struct {
	Type          CommissionEventType `json:"type"`
	CommissionID  string              `json:"commission_id"`
	SaleRef       string              `json:"sale_ref"`
	AdviserID     string              `json:"adviser_id"`
	FeeAmount     string              `json:"fee_amount"`
	CurrencyCode  string              `json:"currency_code"`
	OverrideCount int                 `json:"override_count"`
	BatchRef      string              `json:"batch_ref,omitempty"`
}

type EventPublisher interface {
	PublishCommissionEvent(event CommissionEvent) error
}
