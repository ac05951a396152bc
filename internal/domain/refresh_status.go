package domain

type RefreshStatus string

const (
	RefreshStatusQueued     RefreshStatus = "queued"
	RefreshStatusProcessing RefreshStatus = "processing"
	RefreshStatusDone       RefreshStatus = "done"
	RefreshStatusFailed     RefreshStatus = "failed"
)
