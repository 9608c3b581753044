package ingestiondto

type RowStatus string

const (
	RowCreated RowStatus = "CREATED"
	RowUpdated RowStatus = "UPDATED"
	RowSkipped RowStatus = "SKIPPED"
)

type BatchStatus string

const (
	BatchSuccess BatchStatus = "SUCCESS"
	BatchPartial BatchStatus = "PARTIAL_SUCCESS"
	BatchFailed  BatchStatus = "FAILED"
)

type RowOutcome struct {
	Line    int
	SaleRef string
	Status  RowStatus
	Reason  string
}

type Summary struct {
	BatchRef  string
	Status    BatchStatus
	Processed int
	Skipped   int
	Rows      []RowOutcome
}
