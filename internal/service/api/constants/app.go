package constants

// 응답 본문에 그대로 노출되는 고정 문자열입니다. 배포 파이프라인의 검증 스크립트가 이 값을 비교하므로 변경하면 안 됩니다.
const (
	// Greeting GET / 응답의 message 값
	Greeting = "¡Hola desde Render con CI/CD!"

	// AppTitle GET /info 응답의 app 값
	AppTitle = "CI/CD con Render + GitHub Actions"

	// Platform GET /info 응답의 platform 값
	Platform = "Render"

	// Pipeline GET /info 응답의 pipeline 값
	Pipeline = "GitHub Actions"

	// HealthStatusHealthy GET /health 응답의 status 값
	HealthStatusHealthy = "healthy"

	// TimestampLayout 응답의 timestamp 형식 (UTC, 밀리초 3자리)
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// 라우트 경로입니다.
const (
	PathRoot   = "/"
	PathHealth = "/health"
	PathInfo   = "/info"
)
