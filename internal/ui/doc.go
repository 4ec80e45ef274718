package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It routes between the login, signup and dashboard views based on the session
// state and wires user interactions to the auth manager and the storage
// service. Interface chrome is localized via Localization; service error
// texts are fixed product strings.
