package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/olekukonko/tablewriter"
)

const (
	kindJSON = "json"
	kindPDF  = "pdf"
	kindText = "text"
)

// target is one endpoint served by both stacks. LegacyPath defaults to Path.
type target struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	LegacyPath string `json:"legacy_path"`
	Kind       string `json:"kind"`
	Critical   bool   `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

type reply struct {
	status      int
	contentType string
	body        []byte
	duration    time.Duration
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func (c comparison) verdict() string {
	switch {
	case c.Error != nil:
		return "ERROR"
	case !c.StatusMatch || !c.BodyMatch:
		return "DIFF"
	default:
		return "OK"
	}
}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost/pyni", "Legacy PHP base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	goClient := newClient(goBase, timeout)
	legacyClient := newClient(legacyBase, timeout)

	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)
	for _, t := range targets {
		comp := compareTarget(goClient, legacyClient, t)
		if comp.verdict() != "OK" {
			if t.Critical {
				breaking++
			} else if comp.Error == nil {
				optionalDiff++
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(os.Stdout, comparisons)

	summary := color.GreenString("Breaking diffs: %d, Optional diffs: %d", breaking, optionalDiff)
	if breaking > 0 {
		summary = color.RedString("Breaking diffs: %d, Optional diffs: %d", breaking, optionalDiff)
	}
	fmt.Println(summary)
	if breaking > 0 {
		os.Exit(1)
	}
}

func newClient(base string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetTimeout(timeout).
		SetRetryCount(1).
		SetRetryWaitTime(500 * time.Millisecond)
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	for i := range cfg.Targets {
		if cfg.Targets[i].LegacyPath == "" {
			cfg.Targets[i].LegacyPath = cfg.Targets[i].Path
		}
		if cfg.Targets[i].Kind == "" {
			cfg.Targets[i].Kind = kindJSON
		}
	}
	return cfg.Targets, nil
}

func compareTarget(goClient, legacyClient *resty.Client, tgt target) comparison {
	comp := comparison{Target: tgt}
	goResp, goErr := performRequest(goClient, tgt.Method, tgt.Path)
	legacyResp, legacyErr := performRequest(legacyClient, tgt.Method, tgt.LegacyPath)

	if goErr != nil {
		comp.Error = fmt.Errorf("go request failed: %w", goErr)
		return comp
	}
	if legacyErr != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", legacyErr)
		return comp
	}

	comp.DurationGo = goResp.duration
	comp.DurationLegacy = legacyResp.duration
	comp.GoStatus = goResp.status
	comp.LegacyStatus = legacyResp.status
	comp.StatusMatch = comp.GoStatus == comp.LegacyStatus
	comp.BodyMatch = repliesEqual(tgt.Kind, goResp, legacyResp)
	return comp
}

func performRequest(client *resty.Client, method, path string) (reply, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = http.MethodGet
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	resp, err := client.R().Execute(method, path)
	if err != nil {
		return reply{}, err
	}
	return reply{
		status:      resp.StatusCode(),
		contentType: resp.Header().Get("Content-Type"),
		body:        resp.Body(),
		duration:    resp.Time(),
	}, nil
}

// repliesEqual compares bodies by kind. Documents embed creation timestamps,
// so only their media type and page count are compared.
func repliesEqual(kind string, a, b reply) bool {
	if a.status != http.StatusOK || b.status != http.StatusOK {
		return bodiesEqual(a.body, b.body)
	}
	switch kind {
	case kindPDF:
		return mediaType(a.contentType) == "application/pdf" &&
			mediaType(b.contentType) == "application/pdf" &&
			pageCount(a.body) == pageCount(b.body)
	case kindText:
		return bytes.Equal(bytes.TrimSpace(a.body), bytes.TrimSpace(b.body))
	default:
		return bodiesEqual(a.body, b.body)
	}
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mt
}

var pageObject = regexp.MustCompile(`/Type\s*/Page[^s]`)

// pageCount counts page objects; both generators write them uncompressed.
func pageCount(doc []byte) int {
	return len(pageObject.FindAllIndex(doc, -1))
}

func bodiesEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

// normalize renders numbers as strings: PDO returns every column as a string.
func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = fmt.Sprintf("%d", int64(val))
		} else {
			*v = fmt.Sprintf("%g", val)
		}
	}
}

func printReport(out *os.File, results []comparison) {
	fmt.Fprintln(out, "Shadow Compare Report")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Result", "Method", "Path", "Go", "Legacy", "Body", "Critical", "Detail"})
	table.SetAutoWrapText(false)
	for _, res := range results {
		detail := fmt.Sprintf("%s / %s", res.DurationGo.Round(time.Millisecond), res.DurationLegacy.Round(time.Millisecond))
		if res.Error != nil {
			detail = res.Error.Error()
		}
		table.Append([]string{
			colorVerdict(res.verdict()),
			strings.ToUpper(res.Target.Method),
			res.Target.Path,
			fmt.Sprintf("%d", res.GoStatus),
			fmt.Sprintf("%d", res.LegacyStatus),
			fmt.Sprintf("%t", res.BodyMatch),
			fmt.Sprintf("%t", res.Target.Critical),
			detail,
		})
	}
	table.Render()
}

func colorVerdict(v string) string {
	switch v {
	case "OK":
		return color.GreenString(v)
	case "DIFF":
		return color.YellowString(v)
	default:
		return color.RedString(v)
	}
}
