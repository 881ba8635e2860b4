package constants

// 로그에 남길 때 값을 마스킹해야 하는 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"access_token",
	"password",
	"token",
	"secret",
}

// Context 키 상수입니다.
const (
	// ContextKeyJSONBody 파싱된 JSON 요청 본문(gjson.Result) 저장용 Context 키
	ContextKeyJSONBody = "json_body"
)
