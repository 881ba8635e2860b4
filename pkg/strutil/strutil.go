// Package strutil 로깅 등에 사용하는 문자열 유틸리티를 제공합니다.
package strutil

const maskSuffix = "***"

// Mask 토큰, 비밀번호 등 민감한 값을 로그에 남길 수 있도록 마스킹합니다.
//
//   - 3자 이하: 전체 마스킹
//   - 4~12자: 앞 4자만 표시
//   - 13자 이상: 앞 4자와 뒤 4자만 표시
//
// 길이는 바이트가 아닌 문자(rune) 단위로 계산합니다.
func Mask(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	switch n := len(runes); {
	case n <= 3:
		return maskSuffix
	case n <= 12:
		return string(runes[:4]) + maskSuffix
	default:
		return string(runes[:4]) + maskSuffix + string(runes[n-4:])
	}
}
