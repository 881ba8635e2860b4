package api

import (
	"fmt"
	"io"

	"github.com/darkkaiser/cicd-demo-server/internal/config"
	"github.com/darkkaiser/cicd-demo-server/internal/pkg/mark"
)

// announceStartup 서버가 요청을 받을 준비가 되었음을 알리는 세 줄을 출력합니다.
// 배포 플랫폼의 로그 뷰어에서 그대로 보이는 형식이므로 구조화 로그가 아닌 평문으로 씁니다.
func announceStartup(w io.Writer, appConfig *config.AppConfig) error {
	_, err := fmt.Fprintf(w, "%sServer running on port %d\n%sVersion: %s\n%sDeployment: %s\n",
		mark.Rocket.WithSpace(), appConfig.Port,
		mark.Package.WithSpace(), appConfig.AppVersion,
		mark.Target.WithSpace(), appConfig.StartupDeployment(),
	)
	return err
}
