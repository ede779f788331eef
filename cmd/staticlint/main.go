// Package main собирает multichecker для проекта.
//
// В набор входят:
//   - анализаторы go/analysis/passes, полезные для HTTP- и pgx-кода
//     (httpresponse, lostcancel, errorsas, nilness, printf, shadow, structtag, unusedresult);
//   - все SA-анализаторы staticcheck;
//   - S1000 из simple и ST1005 из stylecheck;
//   - bodyclose;
//   - noexit: запрещает os.Exit и log.Fatal в функции main пакета main.
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/Totarae/shortlink/cmd/staticlint/noexit"
)

func main() {
	analyzers := []*analysis.Analyzer{
		errorsas.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		unusedresult.Analyzer,
	}

	// SA-анализаторы
	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	if a := find(simple.Analyzers, "S1000"); a != nil {
		analyzers = append(analyzers, a)
	}
	if a := find(stylecheck.Analyzers, "ST1005"); a != nil {
		analyzers = append(analyzers, a) // формат текста ошибок
	}

	analyzers = append(analyzers, bodyclose.Analyzer, noexit.Analyzer)

	multichecker.Main(analyzers...)
}

func find(set []*lint.Analyzer, name string) *analysis.Analyzer {
	for _, a := range set {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	return nil
}
