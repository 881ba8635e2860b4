package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/bytes"
)

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러 메시지에 Go 필드명 대신 설정 키 이름(예: body_limit)을 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("body_limit", validateBodyLimit); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'body_limit' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateBodyLimit echo BodyLimit 미들웨어가 해석할 수 있는 크기 문자열(예: 100K, 2M)인지 검증합니다.
func validateBodyLimit(fl validator.FieldLevel) bool {
	limit, err := bytes.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return limit > 0
}
