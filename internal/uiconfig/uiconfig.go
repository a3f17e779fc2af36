package uiconfig

// Payload is the runtime config DTO served to the browser UI.
type Payload struct {
	BackendURL  string `json:"backendUrl"`
	Environment string `json:"environment"`
}
