// smoke-check 배포된 서버의 /health, / 및 /info 응답을 검증합니다.
//
// 사용 예:
//
//	smoke-check --url https://cicd-demo.onrender.com --expect-version 1.2.0 --expect-deployment green
//
// 종료 코드는 모두 통과하면 0, 검사에 실패하면 1, 인자가 잘못되었으면 2입니다.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/darkkaiser/cicd-demo-server/internal/pkg/mark"
	"github.com/darkkaiser/cicd-demo-server/internal/smoke"
	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/spf13/pflag"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("smoke-check", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts    smoke.Options
		verbose bool
	)
	fs.StringVar(&opts.BaseURL, "url", os.Getenv("SMOKE_BASE_URL"), "검사할 서버의 기본 URL (SMOKE_BASE_URL)")
	fs.StringVar(&opts.ExpectVersion, "expect-version", "", "모든 응답의 version이 이 값과 같아야 합니다")
	fs.StringVar(&opts.ExpectDeployment, "expect-deployment", "", "GET / 응답의 deployment가 이 값과 같아야 합니다")
	fs.IntVar(&opts.Retries, "retries", smoke.DefaultRetries, "연결 오류 및 5xx 응답에 대한 재시도 횟수")
	fs.DurationVar(&opts.Timeout, "timeout", smoke.DefaultTimeout, "요청 1건당 타임아웃")
	fs.BoolVarP(&verbose, "verbose", "v", false, "재시도 과정을 포함한 상세 로그를 표준 에러로 출력합니다")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		// ContinueOnError 모드에서는 pflag가 파싱 에러를 출력하지 않습니다.
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "알 수 없는 인자: %v\n", fs.Args())
		return exitUsage
	}
	if opts.Retries < 0 {
		fmt.Fprintf(stderr, "--retries는 0 이상이어야 합니다: %d\n", opts.Retries)
		return exitUsage
	}

	applog.SetOutput(stderr)
	if verbose {
		applog.SetLevel(applog.DebugLevel)
	} else {
		applog.SetLevel(applog.ErrorLevel)
	}

	checker, err := smoke.NewChecker(opts)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}

	report, err := checker.Run(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitFailed
	}

	printReport(stdout, report)
	if !report.Passed() {
		return exitFailed
	}

	return exitOK
}

func printReport(w io.Writer, report *smoke.Report) {
	for _, res := range report.Results {
		if res.Passed() {
			fmt.Fprintf(w, "%sGET %s%s (%d, %s)\n", mark.Check.WithSpace(), report.BaseURL, res.Path, res.StatusCode, res.Elapsed.Round(time.Millisecond))
			continue
		}
		fmt.Fprintf(w, "%sGET %s%s: %v\n", mark.Cross.WithSpace(), report.BaseURL, res.Path, res.Err)
	}
}
