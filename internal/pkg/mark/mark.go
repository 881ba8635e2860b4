// Package mark 콘솔 출력에 사용되는 이모지 상수를 모아 둔 패키지입니다.
package mark

// Mark 이모지 상수를 위한 타입입니다.
type Mark string

const (
	// 서버 기동
	Rocket Mark = "🚀"

	// 버전
	Package Mark = "📦"

	// 배포 대상
	Target Mark = "🎯"

	// 검증 성공
	Check Mark = "✅"

	// 검증 실패
	Cross Mark = "❌"
)

// Values 정의된 모든 마크를 반환합니다.
func Values() []Mark {
	return []Mark{Rocket, Package, Target, Check, Cross}
}

// WithSpace 마크(이모지) 뒤에 구분용 공백을 추가하여 반환합니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return string(m) + " "
}

// String 마크의 순수 이모지 값을 문자열로 반환합니다.
func (m Mark) String() string {
	return string(m)
}
