package application

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dvdk01/uptimeobserver-status/internal/monitor"
	"github.com/dvdk01/uptimeobserver-status/internal/schema"
	"github.com/dvdk01/uptimeobserver-status/internal/serviceerrors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type cliApplication struct {
	out io.Writer
}

func NewCLIApplication(out io.Writer) *cliApplication {
	if out == nil {
		out = os.Stdout
	}
	return &cliApplication{out: out}
}

func (ca *cliApplication) Render(results []schema.Result) {
	dumpTable(ca.out, results)
}

func colorizeUptime(uptime *float64) string {
	if uptime == nil {
		return "-"
	}
	str := FormatUptime(*uptime)
	switch {
	case *uptime >= 99.9:
		return text.FgGreen.Sprint(str)
	case *uptime >= 99:
		return text.FgCyan.Sprint(str)
	case *uptime >= 95:
		return text.FgYellow.Sprint(str)
	default:
		return text.FgRed.Sprint(str)
	}
}

func colorizeStatus(status string) string {
	switch status {
	case "up", "UP", "ok", "OK":
		return text.FgGreen.Sprint(status)
	case "":
		return "-"
	default:
		return text.FgRed.Sprint(status)
	}
}

// FormatUptime drops trailing zeros: 100 -> "100%", 99.5 -> "99.5%", 99.999 -> "99.999%".
func FormatUptime(uptime float64) string {
	str := strings.TrimRight(fmt.Sprintf("%.3f", uptime), "0")
	return strings.TrimSuffix(str, ".") + "%"
}

func dumpTable(out io.Writer, results []schema.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{
		"Monitor", "Name", "Status",
		"Uptime 24h", "Uptime 7d", "Uptime 30d",
		"Last Execution", "Duration", "Error",
	})

	for _, result := range results {
		if !result.Success() {
			t.AppendRow(table.Row{
				monitor.MaskKey(result.Key),
				"-",
				text.FgRed.Sprint("error"),
				"-", "-", "-", "-",
				result.Duration.Round(time.Millisecond),
				serviceerrors.PrettyMessage(result.Err),
			})
			continue
		}

		resp := result.Response
		t.AppendRow(table.Row{
			monitor.MaskKey(result.Key),
			resp.FriendlyName,
			colorizeStatus(resp.Status),
			colorizeUptime(resp.Uptime24h),
			colorizeUptime(resp.Uptime7d),
			colorizeUptime(resp.Uptime30d),
			resp.LastExecution,
			result.Duration.Round(time.Millisecond),
			"",
		})
	}

	t.Render()
}
