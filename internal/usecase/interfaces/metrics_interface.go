package interfaces

// IFormMetrics records order form outcomes.
type IFormMetrics interface {
	FormSubmitted(mode string, persisted bool)
	FormRejected(mode string)
	WorkOrderDeleted()
}
