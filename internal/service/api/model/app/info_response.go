package app

// InfoResponse GET /info 응답
type InfoResponse struct {
	App         string `json:"app" example:"CI/CD con Render + GitHub Actions"`
	Environment string `json:"environment" example:"development"`
	Version     string `json:"version" example:"1.0.0"`
	Platform    string `json:"platform" example:"Render"`
	Pipeline    string `json:"pipeline" example:"GitHub Actions"`
}
