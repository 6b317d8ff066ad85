package service

import "github.com/alexanderramin/skinadvisor/internal/app"

// AdvisorSessionService is the full session-facing surface used by the CLI
// and HTTP adapters.
type AdvisorSessionService interface {
	app.DispatchUseCase
	app.SessionUseCase
}
