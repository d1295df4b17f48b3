package ledger

import (
	"strings"

	"github.com/lcorreia/bankledger/internal/domain"
)

// reportSeparator divides account blocks in the rendered report.
const reportSeparator = "------------------------"

// RenderReport renders statements as the human-readable text report:
// one block per account, in order, each followed by a separator line.
// The format is write-only; nothing parses it back.
func RenderReport(statements []domain.Statement) string {
	var b strings.Builder
	for _, st := range statements {
		b.WriteString(st.String())
		b.WriteString(reportSeparator)
		b.WriteString("\n")
	}
	return b.String()
}
