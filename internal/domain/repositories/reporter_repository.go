package repositories

// ReporterRepository renders the feedback of a provisioning run.
type ReporterRepository interface {
	Info(msg string)
	Success(msg string)
	Debug(msg string)
	// Error surfaces a failure to the user right away.
	Error(msg string)

	// ShowProgress makes the progress indicator visible, starting at 0.
	ShowProgress()
	// SetProgress moves the progress indicator to ratio in [0,1].
	SetProgress(ratio float64)
	// ShowURL displays the published site as a link.
	ShowURL(url string)
	// Finish releases the progress indicator.
	Finish()
}
