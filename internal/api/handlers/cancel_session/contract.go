package cancel_session

type BookingWizardUseCase interface {
	CancelSession(sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
