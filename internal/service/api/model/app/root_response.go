package app

// RootResponse GET / 응답
type RootResponse struct {
	Message    string `json:"message" example:"¡Hola desde Render con CI/CD!"`
	Version    string `json:"version" example:"1.0.0"`
	Deployment string `json:"deployment" example:"production"`
	Timestamp  string `json:"timestamp" example:"2025-01-01T00:00:00.000Z"`
}
