package system

// HealthResponse 헬스체크 응답
//
// 필드 순서가 곧 JSON 키 순서입니다.
type HealthResponse struct {
	// Status 서버 상태 (항상 "healthy")
	Status string `json:"status" example:"healthy"`

	// Timestamp 응답 생성 시각 (UTC, 밀리초 정밀도)
	Timestamp string `json:"timestamp" example:"2025-01-01T00:00:00.000Z"`

	// Version 애플리케이션 버전 (APP_VERSION)
	Version string `json:"version" example:"1.0.0"`
}
